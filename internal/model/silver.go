package model

// silver 层行结构：清洗/富化后的实体表。
// 时间戳列统一为 "2006-01-02 15:04:05" 规范文本，缺失为 nil。

// GeoReference 邮编前缀地理参考（每个前缀恰好一行）
type GeoReference struct {
	GeolocationZipCodePrefix  string  `parquet:"name=geolocation_zip_code_prefix, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationCity           string  `parquet:"name=geolocation_city, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationState          string  `parquet:"name=geolocation_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationLat            float64 `parquet:"name=geolocation_lat, type=DOUBLE"`
	GeolocationLng            float64 `parquet:"name=geolocation_lng, type=DOUBLE"`
	GeolocationCityNormalized string  `parquet:"name=geolocation_city_normalized, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// TableName 指定表名
func (GeoReference) TableName() string { return "olist_geolocation_ref" }

// SilverOrder 清洗后的订单（SLA 派生列已计算）
type SilverOrder struct {
	OrderID                    string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerID                 string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderStatus                string  `parquet:"name=order_status, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderPurchaseTimestamp     *string `parquet:"name=order_purchase_timestamp, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderApprovedAt            *string `parquet:"name=order_approved_at, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderDeliveredCarrierDate  *string `parquet:"name=order_delivered_carrier_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderDeliveredCustomerDate *string `parquet:"name=order_delivered_customer_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderEstimatedDeliveryDate *string `parquet:"name=order_estimated_delivery_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	DeliveryDays               *int32  `parquet:"name=delivery_days, type=INT32, repetitiontype=OPTIONAL"`
	DelayDiffDays              *int32  `parquet:"name=delay_diff_days, type=INT32, repetitiontype=OPTIONAL"`
	IsDelayed                  int32   `parquet:"name=is_delayed, type=INT32"`
}

// TableName 指定表名
func (SilverOrder) TableName() string { return "olist_orders" }

// SilverProduct 清洗后的商品（维度列经正中位数填充，永不为零/空）
type SilverProduct struct {
	ProductID                string   `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ProductCategoryName      string   `parquet:"name=product_category_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ProductNameLenght        *float64 `parquet:"name=product_name_lenght, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductDescriptionLenght *float64 `parquet:"name=product_description_lenght, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductPhotosQty         *float64 `parquet:"name=product_photos_qty, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductWeightG           float64  `parquet:"name=product_weight_g, type=DOUBLE"`
	ProductLengthCm          float64  `parquet:"name=product_length_cm, type=DOUBLE"`
	ProductHeightCm          float64  `parquet:"name=product_height_cm, type=DOUBLE"`
	ProductWidthCm           float64  `parquet:"name=product_width_cm, type=DOUBLE"`
	VolumeCm3                float64  `parquet:"name=volume_cm3, type=DOUBLE"`
}

// TableName 指定表名
func (SilverProduct) TableName() string { return "olist_products" }

// SilverCustomer 地理富化后的客户
type SilverCustomer struct {
	CustomerID                string   `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerUniqueID          string   `parquet:"name=customer_unique_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerZipCodePrefix     string   `parquet:"name=customer_zip_code_prefix, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerCity              string   `parquet:"name=customer_city, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerState             string   `parquet:"name=customer_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationLat            *float64 `parquet:"name=geolocation_lat, type=DOUBLE, repetitiontype=OPTIONAL"`
	GeolocationLng            *float64 `parquet:"name=geolocation_lng, type=DOUBLE, repetitiontype=OPTIONAL"`
	GeolocationCityNormalized *string  `parquet:"name=geolocation_city_normalized, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	CityFinal                 string   `parquet:"name=city_final, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	LocationFull              string   `parquet:"name=location_full, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// TableName 指定表名
func (SilverCustomer) TableName() string { return "olist_customers" }

// SilverSeller 地理富化后的卖家
type SilverSeller struct {
	SellerID                  string   `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerZipCodePrefix       string   `parquet:"name=seller_zip_code_prefix, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerCity                string   `parquet:"name=seller_city, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerState               string   `parquet:"name=seller_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationLat            *float64 `parquet:"name=geolocation_lat, type=DOUBLE, repetitiontype=OPTIONAL"`
	GeolocationLng            *float64 `parquet:"name=geolocation_lng, type=DOUBLE, repetitiontype=OPTIONAL"`
	GeolocationCityNormalized *string  `parquet:"name=geolocation_city_normalized, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	CityFinal                 string   `parquet:"name=city_final, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	LocationFull              string   `parquet:"name=location_full, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// TableName 指定表名
func (SilverSeller) TableName() string { return "olist_sellers" }

// SilverOrderItem 订单明细（含 total_value）
type SilverOrderItem struct {
	OrderID           string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderItemID       int32   `parquet:"name=order_item_id, type=INT32"`
	ProductID         string  `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerID          string  `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ShippingLimitDate *string `parquet:"name=shipping_limit_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Price             float64 `parquet:"name=price, type=DOUBLE"`
	FreightValue      float64 `parquet:"name=freight_value, type=DOUBLE"`
	TotalValue        float64 `parquet:"name=total_value, type=DOUBLE"`
}

// TableName 指定表名
func (SilverOrderItem) TableName() string { return "olist_order_items" }

// SilverPayment 支付记录（仅保留正金额）
type SilverPayment struct {
	OrderID             string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PaymentSequential   int32   `parquet:"name=payment_sequential, type=INT32"`
	PaymentType         string  `parquet:"name=payment_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PaymentInstallments int32   `parquet:"name=payment_installments, type=INT32"`
	PaymentValue        float64 `parquet:"name=payment_value, type=DOUBLE"`
}

// TableName 指定表名
func (SilverPayment) TableName() string { return "olist_order_payments" }

// SilverReview 清洗后的评价（评论去换行，"nan"/"None" 归为缺失）
type SilverReview struct {
	ReviewID              string  `parquet:"name=review_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderID               string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ReviewScore           int32   `parquet:"name=review_score, type=INT32"`
	ReviewCommentTitle    *string `parquet:"name=review_comment_title, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ReviewCommentMessage  *string `parquet:"name=review_comment_message, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ReviewCreationDate    *string `parquet:"name=review_creation_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ReviewAnswerTimestamp *string `parquet:"name=review_answer_timestamp, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	HasComment            int32   `parquet:"name=has_comment, type=INT32"`
}

// TableName 指定表名
func (SilverReview) TableName() string { return "olist_order_reviews" }
