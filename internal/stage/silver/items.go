package silver

import (
	"strings"

	"odp/dpbatch/internal/model"
)

// EnrichOrderItems 订单明细派生 total_value = price + freight_value
func EnrichOrderItems(raws []model.RawOrderItem) []model.SilverOrderItem {
	out := make([]model.SilverOrderItem, 0, len(raws))
	for _, r := range raws {
		ts := model.ParseTime(r.ShippingLimitDate)
		out = append(out, model.SilverOrderItem{
			OrderID:           r.OrderID,
			OrderItemID:       r.OrderItemID,
			ProductID:         r.ProductID,
			SellerID:          r.SellerID,
			ShippingLimitDate: model.FormatTime(ts),
			Price:             r.Price,
			FreightValue:      r.FreightValue,
			TotalValue:        r.Price + r.FreightValue,
		})
	}
	return out
}

// EnrichPayments 仅保留金额严格为正的支付记录
func EnrichPayments(raws []model.RawPayment) []model.SilverPayment {
	out := make([]model.SilverPayment, 0, len(raws))
	for _, r := range raws {
		if r.PaymentValue <= 0 {
			continue
		}
		out = append(out, model.SilverPayment{
			OrderID:             r.OrderID,
			PaymentSequential:   r.PaymentSequential,
			PaymentType:         r.PaymentType,
			PaymentInstallments: r.PaymentInstallments,
			PaymentValue:        r.PaymentValue,
		})
	}
	return out
}

// EnrichReviews 清洗评价
// 评论去除内嵌换行，字面量 "nan"/"None" 视为缺失；has_comment 按最终
// 缺失/存在状态计算
func EnrichReviews(raws []model.RawReview) []model.SilverReview {
	out := make([]model.SilverReview, 0, len(raws))
	for _, r := range raws {
		comment := cleanComment(r.ReviewCommentMessage)

		var hasComment int32
		if comment != nil {
			hasComment = 1
		}

		creation := model.ParseTime(r.ReviewCreationDate)
		answer := model.ParseTime(r.ReviewAnswerTimestamp)

		out = append(out, model.SilverReview{
			ReviewID:              r.ReviewID,
			OrderID:               r.OrderID,
			ReviewScore:           r.ReviewScore,
			ReviewCommentTitle:    r.ReviewCommentTitle,
			ReviewCommentMessage:  comment,
			ReviewCreationDate:    model.FormatTime(creation),
			ReviewAnswerTimestamp: model.FormatTime(answer),
			HasComment:            hasComment,
		})
	}
	return out
}

// cleanComment 换行转空格，字面量 "nan"/"None" 归为缺失
func cleanComment(msg *string) *string {
	if msg == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(*msg, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\r", " ")
	if cleaned == "nan" || cleaned == "None" {
		return nil
	}
	return &cleaned
}
