package model

// gold 层行结构：星型模型的维度与事实表。
// 列名沿用数仓既有命名（下游报表按这些列名消费），gorm 标签用于数仓建表。

// DimCalendar 日历维度（代理键 id_data = YYYYMMDD）
type DimCalendar struct {
	Data          string `parquet:"name=data, type=BYTE_ARRAY, convertedtype=UTF8" gorm:"column:data;type:varchar(10);not null"`
	IDData        int32  `parquet:"name=id_data, type=INT32" gorm:"column:id_data;primaryKey"`
	Ano           int32  `parquet:"name=ano, type=INT32" gorm:"column:ano;not null"`
	Mes           int32  `parquet:"name=mes, type=INT32" gorm:"column:mes;not null"`
	Dia           int32  `parquet:"name=dia, type=INT32" gorm:"column:dia;not null"`
	Trimestre     int32  `parquet:"name=trimestre, type=INT32" gorm:"column:trimestre;not null"`
	DiaSemana     int32  `parquet:"name=dia_semana, type=INT32" gorm:"column:dia_semana;not null"`
	NomeDia       string `parquet:"name=nome_dia, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:nome_dia;type:varchar(16);not null"`
	IsFimDeSemana int32  `parquet:"name=is_fim_de_semana, type=INT32" gorm:"column:is_fim_de_semana;not null"`
}

// TableName 指定表名
func (DimCalendar) TableName() string { return "dim_calendario" }

// DimCustomer 客户维度
type DimCustomer struct {
	CustomerID       string   `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:customer_id;primaryKey;type:varchar(64)"`
	CustomerUniqueID string   `parquet:"name=customer_unique_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:customer_unique_id;type:varchar(64);not null"`
	CityFinal        string   `parquet:"name=city_final, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:city_final;type:varchar(128)"`
	CustomerState    string   `parquet:"name=customer_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:customer_state;type:varchar(2)"`
	Regiao           string   `parquet:"name=regiao, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:regiao;type:varchar(16)"`
	LocationFull     string   `parquet:"name=location_full, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:location_full;type:varchar(160)"`
	GeolocationLat   *float64 `parquet:"name=geolocation_lat, type=DOUBLE, repetitiontype=OPTIONAL" gorm:"column:geolocation_lat"`
	GeolocationLng   *float64 `parquet:"name=geolocation_lng, type=DOUBLE, repetitiontype=OPTIONAL" gorm:"column:geolocation_lng"`
}

// TableName 指定表名
func (DimCustomer) TableName() string { return "dim_clientes" }

// DimProduct 商品维度
type DimProduct struct {
	ProductID           string  `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:product_id;primaryKey;type:varchar(64)"`
	ProductCategoryName string  `parquet:"name=product_category_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:product_category_name;type:varchar(128)"`
	ProductWeightG      float64 `parquet:"name=product_weight_g, type=DOUBLE" gorm:"column:product_weight_g;not null"`
	VolumeCm3           float64 `parquet:"name=volume_cm3, type=DOUBLE" gorm:"column:volume_cm3;not null"`
}

// TableName 指定表名
func (DimProduct) TableName() string { return "dim_produtos" }

// DimSeller 卖家维度
type DimSeller struct {
	SellerID       string   `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:seller_id;primaryKey;type:varchar(64)"`
	CityFinal      string   `parquet:"name=city_final, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:city_final;type:varchar(128)"`
	SellerState    string   `parquet:"name=seller_state, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:seller_state;type:varchar(2)"`
	LocationFull   string   `parquet:"name=location_full, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:location_full;type:varchar(160)"`
	GeolocationLat *float64 `parquet:"name=geolocation_lat, type=DOUBLE, repetitiontype=OPTIONAL" gorm:"column:geolocation_lat"`
	GeolocationLng *float64 `parquet:"name=geolocation_lng, type=DOUBLE, repetitiontype=OPTIONAL" gorm:"column:geolocation_lng"`
}

// TableName 指定表名
func (DimSeller) TableName() string { return "dim_vendedores" }

// FactSale 销售事实（粒度：每个售出明细一行）
type FactSale struct {
	OrderID       string   `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:order_id;type:varchar(64);not null;index:idx_fato_vendas_order"`
	OrderItemID   int32    `parquet:"name=order_item_id, type=INT32" gorm:"column:order_item_id;not null"`
	ProductID     string   `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:product_id;type:varchar(64)"`
	SellerID      string   `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:seller_id;type:varchar(64)"`
	CustomerID    string   `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:customer_id;type:varchar(64)"`
	HorarioVenda  *string  `parquet:"name=horario_venda, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" gorm:"column:horario_venda;type:varchar(19)"`
	FkDataVenda   *int32   `parquet:"name=fk_data_venda, type=INT32, repetitiontype=OPTIONAL" gorm:"column:fk_data_venda;index:idx_fato_vendas_data"`
	OrderStatus   string   `parquet:"name=order_status, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:order_status;type:varchar(32)"`
	Price         float64  `parquet:"name=price, type=DOUBLE" gorm:"column:price;not null"`
	FreightValue  float64  `parquet:"name=freight_value, type=DOUBLE" gorm:"column:freight_value;not null"`
	TotalValue    float64  `parquet:"name=total_value, type=DOUBLE" gorm:"column:total_value;not null"`
	DeliveryDays  *int32   `parquet:"name=delivery_days, type=INT32, repetitiontype=OPTIONAL" gorm:"column:delivery_days"`
	DelayDiffDays *int32   `parquet:"name=delay_diff_days, type=INT32, repetitiontype=OPTIONAL" gorm:"column:delay_diff_days"`
	IsDelayed     int32    `parquet:"name=is_delayed, type=INT32" gorm:"column:is_delayed;not null"`
}

// TableName 指定表名
func (FactSale) TableName() string { return "fato_vendas" }

// FactPayment 支付事实（silver 支付表的直通投影）
type FactPayment struct {
	OrderID             string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:order_id;type:varchar(64);not null;index:idx_fato_pagamentos_order"`
	PaymentSequential   int32   `parquet:"name=payment_sequential, type=INT32" gorm:"column:payment_sequential;not null"`
	PaymentType         string  `parquet:"name=payment_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:payment_type;type:varchar(32)"`
	PaymentInstallments int32   `parquet:"name=payment_installments, type=INT32" gorm:"column:payment_installments;not null"`
	PaymentValue        float64 `parquet:"name=payment_value, type=DOUBLE" gorm:"column:payment_value;not null"`
}

// TableName 指定表名
func (FactPayment) TableName() string { return "fato_pagamentos" }

// FactReview 评价事实（(review_id, order_id) 唯一）
type FactReview struct {
	ReviewID              string  `parquet:"name=review_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:review_id;primaryKey;type:varchar(64)"`
	OrderID               string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:order_id;primaryKey;type:varchar(64)"`
	ReviewScore           int32   `parquet:"name=review_score, type=INT32" gorm:"column:review_score;not null"`
	ReviewCommentTitle    *string `parquet:"name=review_comment_title, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" gorm:"column:review_comment_title;type:text"`
	ReviewCommentMessage  *string `parquet:"name=review_comment_message, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" gorm:"column:review_comment_message;type:text"`
	ReviewCreationDate    *string `parquet:"name=review_creation_date, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" gorm:"column:review_creation_date;type:varchar(19)"`
	ReviewAnswerTimestamp *string `parquet:"name=review_answer_timestamp, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" gorm:"column:review_answer_timestamp;type:varchar(19)"`
	HasComment            int32   `parquet:"name=has_comment, type=INT32" gorm:"column:has_comment;not null"`
}

// TableName 指定表名
func (FactReview) TableName() string { return "fato_reviews" }

// PredictionResult 延误预测结果（每个订单唯一一行）
type PredictionResult struct {
	OrderID             string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY" gorm:"column:order_id;primaryKey;type:varchar(64)"`
	ProbabilidadeAtraso float64 `parquet:"name=probabilidade_atraso, type=DOUBLE" gorm:"column:probabilidade_atraso;not null"`
	AlertaAtraso        int32   `parquet:"name=alerta_atraso, type=INT32" gorm:"column:alerta_atraso;not null"`
}

// TableName 指定表名
func (PredictionResult) TableName() string { return "fato_previsoes_logistica" }
