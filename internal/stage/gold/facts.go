package gold

import (
	"odp/dpbatch/internal/model"
)

// BuildFactSales 销售事实：明细左连接订单，粒度为每个售出明细一行
// 日历外键由购买时间戳确定性推导（与 DateKey 同一纯函数），与
// dim_calendario 的关联按构造即正确，无需运行期查表
func BuildFactSales(items []model.SilverOrderItem, orders []model.SilverOrder) []model.FactSale {
	orderIdx := make(map[string]model.SilverOrder, len(orders))
	for _, o := range orders {
		orderIdx[o.OrderID] = o
	}

	out := make([]model.FactSale, 0, len(items))
	for _, it := range items {
		row := model.FactSale{
			OrderID:      it.OrderID,
			OrderItemID:  it.OrderItemID,
			ProductID:    it.ProductID,
			SellerID:     it.SellerID,
			Price:        it.Price,
			FreightValue: it.FreightValue,
			TotalValue:   it.TotalValue,
		}

		if o, ok := orderIdx[it.OrderID]; ok {
			row.CustomerID = o.CustomerID
			row.OrderStatus = o.OrderStatus
			row.HorarioVenda = o.OrderPurchaseTimestamp
			row.DeliveryDays = o.DeliveryDays
			row.DelayDiffDays = o.DelayDiffDays
			row.IsDelayed = o.IsDelayed

			if purchase := model.ParseTime(o.OrderPurchaseTimestamp); purchase != nil {
				row.FkDataVenda = model.I32Ptr(DateKey(*purchase))
			}
		}

		out = append(out, row)
	}

	return out
}

// BuildFactPayments 支付事实：silver 支付表的直通投影
func BuildFactPayments(payments []model.SilverPayment) []model.FactPayment {
	out := make([]model.FactPayment, 0, len(payments))
	for _, p := range payments {
		out = append(out, model.FactPayment{
			OrderID:             p.OrderID,
			PaymentSequential:   p.PaymentSequential,
			PaymentType:         p.PaymentType,
			PaymentInstallments: p.PaymentInstallments,
			PaymentValue:        p.PaymentValue,
		})
	}
	return out
}

// BuildFactReviews 评价事实：直通投影并按 (review_id, order_id) 再去重
// （上游已保证唯一，此处为复合主键的最后防线）
func BuildFactReviews(reviews []model.SilverReview) []model.FactReview {
	type reviewKey struct {
		reviewID string
		orderID  string
	}

	seen := make(map[reviewKey]struct{}, len(reviews))
	out := make([]model.FactReview, 0, len(reviews))

	for _, r := range reviews {
		key := reviewKey{reviewID: r.ReviewID, orderID: r.OrderID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, model.FactReview{
			ReviewID:              r.ReviewID,
			OrderID:               r.OrderID,
			ReviewScore:           r.ReviewScore,
			ReviewCommentTitle:    r.ReviewCommentTitle,
			ReviewCommentMessage:  r.ReviewCommentMessage,
			ReviewCreationDate:    r.ReviewCreationDate,
			ReviewAnswerTimestamp: r.ReviewAnswerTimestamp,
			HasComment:            r.HasComment,
		})
	}

	return out
}
