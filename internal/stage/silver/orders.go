package silver

import (
	"math"
	"time"

	"odp/dpbatch/internal/model"
)

// EnrichOrders 清洗订单并派生交付 SLA 指标
// 五个生命周期时间戳宽松解析（解析失败视为缺失），delivery_days 与
// delay_diff_days 为整数天差；is_delayed 在置空之前由原始差值计算，
// 客户签收时间缺失时仅置空两个天数字段、不改标记
func EnrichOrders(raws []model.RawOrder) []model.SilverOrder {
	out := make([]model.SilverOrder, 0, len(raws))

	for _, r := range raws {
		purchase := model.ParseTime(r.OrderPurchaseTimestamp)
		approved := model.ParseTime(r.OrderApprovedAt)
		carrier := model.ParseTime(r.OrderDeliveredCarrierDate)
		delivered := model.ParseTime(r.OrderDeliveredCustomerDate)
		estimated := model.ParseTime(r.OrderEstimatedDeliveryDate)

		var deliveryDays, delayDiffDays *int32
		var isDelayed int32

		if delivered != nil && purchase != nil {
			deliveryDays = model.I32Ptr(floorDays(delivered.Sub(*purchase)))
		}
		if delivered != nil && estimated != nil {
			diff := floorDays(delivered.Sub(*estimated))
			delayDiffDays = model.I32Ptr(diff)
			if diff > 0 {
				isDelayed = 1
			}
		}

		// 客户签收缺失：两个天数字段置空（标记保持已计算值）
		if delivered == nil {
			deliveryDays = nil
			delayDiffDays = nil
		}

		out = append(out, model.SilverOrder{
			OrderID:                    r.OrderID,
			CustomerID:                 r.CustomerID,
			OrderStatus:                r.OrderStatus,
			OrderPurchaseTimestamp:     model.FormatTime(purchase),
			OrderApprovedAt:            model.FormatTime(approved),
			OrderDeliveredCarrierDate:  model.FormatTime(carrier),
			OrderDeliveredCustomerDate: model.FormatTime(delivered),
			OrderEstimatedDeliveryDate: model.FormatTime(estimated),
			DeliveryDays:               deliveryDays,
			DelayDiffDays:              delayDiffDays,
			IsDelayed:                  isDelayed,
		})
	}

	return out
}

// floorDays 时间差向下取整为天数（负差值向负方向取整）
func floorDays(d time.Duration) int32 {
	return int32(math.Floor(d.Hours() / 24))
}
