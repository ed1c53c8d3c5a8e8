package bronze

import (
	"strings"
	"time"

	"github.com/spf13/cast"

	"odp/dpbatch/internal/model"
)

// record 源库通用记录（列类型由驱动决定，此处统一强制转换）
type record = map[string]interface{}

// convertOrder 订单行转换
func convertOrder(rec record, ingestionDate string) model.RawOrder {
	return model.RawOrder{
		OrderID:                    str(rec, "order_id"),
		CustomerID:                 str(rec, "customer_id"),
		OrderStatus:                str(rec, "order_status"),
		OrderPurchaseTimestamp:     optTimestamp(rec, "order_purchase_timestamp"),
		OrderApprovedAt:            optTimestamp(rec, "order_approved_at"),
		OrderDeliveredCarrierDate:  optTimestamp(rec, "order_delivered_carrier_date"),
		OrderDeliveredCustomerDate: optTimestamp(rec, "order_delivered_customer_date"),
		OrderEstimatedDeliveryDate: optTimestamp(rec, "order_estimated_delivery_date"),
		IngestionDate:              ingestionDate,
	}
}

// convertOrderItem 订单明细行转换
func convertOrderItem(rec record, ingestionDate string) model.RawOrderItem {
	return model.RawOrderItem{
		OrderID:           str(rec, "order_id"),
		OrderItemID:       i32(rec, "order_item_id"),
		ProductID:         str(rec, "product_id"),
		SellerID:          str(rec, "seller_id"),
		ShippingLimitDate: optTimestamp(rec, "shipping_limit_date"),
		Price:             f64(rec, "price"),
		FreightValue:      f64(rec, "freight_value"),
		IngestionDate:     ingestionDate,
	}
}

// convertPayment 支付行转换
func convertPayment(rec record, ingestionDate string) model.RawPayment {
	return model.RawPayment{
		OrderID:             str(rec, "order_id"),
		PaymentSequential:   i32(rec, "payment_sequential"),
		PaymentType:         str(rec, "payment_type"),
		PaymentInstallments: i32(rec, "payment_installments"),
		PaymentValue:        f64(rec, "payment_value"),
		IngestionDate:       ingestionDate,
	}
}

// convertProduct 商品行转换
func convertProduct(rec record, ingestionDate string) model.RawProduct {
	return model.RawProduct{
		ProductID:                str(rec, "product_id"),
		ProductCategoryName:      optStr(rec, "product_category_name"),
		ProductNameLenght:        optF64(rec, "product_name_lenght"),
		ProductDescriptionLenght: optF64(rec, "product_description_lenght"),
		ProductPhotosQty:         optF64(rec, "product_photos_qty"),
		ProductWeightG:           optF64(rec, "product_weight_g"),
		ProductLengthCm:          optF64(rec, "product_length_cm"),
		ProductHeightCm:          optF64(rec, "product_height_cm"),
		ProductWidthCm:           optF64(rec, "product_width_cm"),
		IngestionDate:            ingestionDate,
	}
}

// convertCustomer 客户行转换
func convertCustomer(rec record, ingestionDate string) model.RawCustomer {
	return model.RawCustomer{
		CustomerID:            str(rec, "customer_id"),
		CustomerUniqueID:      str(rec, "customer_unique_id"),
		CustomerZipCodePrefix: zipPrefix(rec, "customer_zip_code_prefix"),
		CustomerCity:          str(rec, "customer_city"),
		CustomerState:         str(rec, "customer_state"),
		IngestionDate:         ingestionDate,
	}
}

// convertSeller 卖家行转换
func convertSeller(rec record, ingestionDate string) model.RawSeller {
	return model.RawSeller{
		SellerID:            str(rec, "seller_id"),
		SellerZipCodePrefix: zipPrefix(rec, "seller_zip_code_prefix"),
		SellerCity:          str(rec, "seller_city"),
		SellerState:         str(rec, "seller_state"),
		IngestionDate:       ingestionDate,
	}
}

// convertReview 评价行转换
func convertReview(rec record, ingestionDate string) model.RawReview {
	return model.RawReview{
		ReviewID:              str(rec, "review_id"),
		OrderID:               str(rec, "order_id"),
		ReviewScore:           i32(rec, "review_score"),
		ReviewCommentTitle:    optStr(rec, "review_comment_title"),
		ReviewCommentMessage:  optStr(rec, "review_comment_message"),
		ReviewCreationDate:    optTimestamp(rec, "review_creation_date"),
		ReviewAnswerTimestamp: optTimestamp(rec, "review_answer_timestamp"),
		IngestionDate:         ingestionDate,
	}
}

// convertGeolocation 地理样本行转换
func convertGeolocation(rec record, ingestionDate string) model.RawGeolocation {
	return model.RawGeolocation{
		GeolocationZipCodePrefix: zipPrefix(rec, "geolocation_zip_code_prefix"),
		GeolocationLat:           f64(rec, "geolocation_lat"),
		GeolocationLng:           f64(rec, "geolocation_lng"),
		GeolocationCity:          str(rec, "geolocation_city"),
		GeolocationState:         str(rec, "geolocation_state"),
		IngestionDate:            ingestionDate,
	}
}

// str 必填文本列
func str(rec record, col string) string {
	return cast.ToString(rec[col])
}

// optStr 可空文本列（NULL 与空串均视为缺失）
func optStr(rec record, col string) *string {
	v, ok := rec[col]
	if !ok || v == nil {
		return nil
	}
	s := cast.ToString(v)
	if s == "" {
		return nil
	}
	return &s
}

// optTimestamp 可空时间戳列，统一为规范文本
// 驱动可能返回 time.Time 或文本，两者都归一到同一格式
func optTimestamp(rec record, col string) *string {
	v, ok := rec[col]
	if !ok || v == nil {
		return nil
	}
	if t, isTime := v.(time.Time); isTime {
		return model.FormatTime(&t)
	}
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return nil
	}
	if t := model.ParseTime(&s); t != nil {
		return model.FormatTime(t)
	}
	return &s
}

// f64 必填数值列
func f64(rec record, col string) float64 {
	return cast.ToFloat64(rec[col])
}

// optF64 可空数值列
func optF64(rec record, col string) *float64 {
	v, ok := rec[col]
	if !ok || v == nil {
		return nil
	}
	f := cast.ToFloat64(v)
	return &f
}

// i32 必填整型列
func i32(rec record, col string) int32 {
	return cast.ToInt32(rec[col])
}

// zipPrefix 邮编前缀列，左补零到 5 位
func zipPrefix(rec record, col string) string {
	s := cast.ToString(rec[col])
	for len(s) < 5 {
		s = "0" + s
	}
	return s
}
