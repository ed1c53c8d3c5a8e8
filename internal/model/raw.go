package model

// bronze 层行结构：源库原始记录加 ingestion_date 摄取时间戳。
// 邮编前缀在摄取时统一补零到 5 位，时间戳列保持源库文本形式由 silver 阶段解析。

// RawOrder 原始订单
type RawOrder struct {
	OrderID                    string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerID                 string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderStatus                string  `parquet:"name=order_status, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderPurchaseTimestamp     *string `parquet:"name=order_purchase_timestamp, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderApprovedAt            *string `parquet:"name=order_approved_at, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderDeliveredCarrierDate  *string `parquet:"name=order_delivered_carrier_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderDeliveredCustomerDate *string `parquet:"name=order_delivered_customer_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	OrderEstimatedDeliveryDate *string `parquet:"name=order_estimated_delivery_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	IngestionDate              string  `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawOrder) TableName() string { return "olist_orders" }

// RawOrderItem 原始订单明细
type RawOrderItem struct {
	OrderID           string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderItemID       int32   `parquet:"name=order_item_id, type=INT32"`
	ProductID         string  `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerID          string  `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ShippingLimitDate *string `parquet:"name=shipping_limit_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	Price             float64 `parquet:"name=price, type=DOUBLE"`
	FreightValue      float64 `parquet:"name=freight_value, type=DOUBLE"`
	IngestionDate     string  `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawOrderItem) TableName() string { return "olist_order_items" }

// RawPayment 原始支付记录
type RawPayment struct {
	OrderID             string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PaymentSequential   int32   `parquet:"name=payment_sequential, type=INT32"`
	PaymentType         string  `parquet:"name=payment_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PaymentInstallments int32   `parquet:"name=payment_installments, type=INT32"`
	PaymentValue        float64 `parquet:"name=payment_value, type=DOUBLE"`
	IngestionDate       string  `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawPayment) TableName() string { return "olist_order_payments" }

// RawProduct 原始商品
type RawProduct struct {
	ProductID                string   `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ProductCategoryName      *string  `parquet:"name=product_category_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ProductNameLenght        *float64 `parquet:"name=product_name_lenght, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductDescriptionLenght *float64 `parquet:"name=product_description_lenght, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductPhotosQty         *float64 `parquet:"name=product_photos_qty, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductWeightG           *float64 `parquet:"name=product_weight_g, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductLengthCm          *float64 `parquet:"name=product_length_cm, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductHeightCm          *float64 `parquet:"name=product_height_cm, type=DOUBLE, repetitiontype=OPTIONAL"`
	ProductWidthCm           *float64 `parquet:"name=product_width_cm, type=DOUBLE, repetitiontype=OPTIONAL"`
	IngestionDate            string   `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawProduct) TableName() string { return "olist_products" }

// RawCustomer 原始客户
type RawCustomer struct {
	CustomerID            string `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerUniqueID      string `parquet:"name=customer_unique_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerZipCodePrefix string `parquet:"name=customer_zip_code_prefix, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerCity          string `parquet:"name=customer_city, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CustomerState         string `parquet:"name=customer_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	IngestionDate         string `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawCustomer) TableName() string { return "olist_customers" }

// RawSeller 原始卖家
type RawSeller struct {
	SellerID            string `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerZipCodePrefix string `parquet:"name=seller_zip_code_prefix, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerCity          string `parquet:"name=seller_city, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	SellerState         string `parquet:"name=seller_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	IngestionDate       string `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawSeller) TableName() string { return "olist_sellers" }

// RawReview 原始评价
type RawReview struct {
	ReviewID              string  `parquet:"name=review_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	OrderID               string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ReviewScore           int32   `parquet:"name=review_score, type=INT32"`
	ReviewCommentTitle    *string `parquet:"name=review_comment_title, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ReviewCommentMessage  *string `parquet:"name=review_comment_message, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ReviewCreationDate    *string `parquet:"name=review_creation_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	ReviewAnswerTimestamp *string `parquet:"name=review_answer_timestamp, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
	IngestionDate         string  `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawReview) TableName() string { return "olist_order_reviews" }

// RawGeolocation 原始地理样本（同一邮编前缀可出现多条）
type RawGeolocation struct {
	GeolocationZipCodePrefix string  `parquet:"name=geolocation_zip_code_prefix, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationLat           float64 `parquet:"name=geolocation_lat, type=DOUBLE"`
	GeolocationLng           float64 `parquet:"name=geolocation_lng, type=DOUBLE"`
	GeolocationCity          string  `parquet:"name=geolocation_city, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GeolocationState         string  `parquet:"name=geolocation_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	IngestionDate            string  `parquet:"name=ingestion_date, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// TableName 指定表名
func (RawGeolocation) TableName() string { return "olist_geolocation" }
