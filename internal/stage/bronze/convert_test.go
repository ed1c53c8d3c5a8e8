package bronze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertOrder(t *testing.T) {
	rec := record{
		"order_id":                      "o1",
		"customer_id":                   "c1",
		"order_status":                  "delivered",
		"order_purchase_timestamp":      time.Date(2018, 7, 5, 13, 45, 0, 0, time.UTC),
		"order_approved_at":             "2018-07-05 14:00:00",
		"order_delivered_carrier_date":  nil,
		"order_delivered_customer_date": nil,
		"order_estimated_delivery_date": "2018-07-20 00:00:00",
	}

	out := convertOrder(rec, "2026-08-30")

	assert.Equal(t, "o1", out.OrderID)
	assert.Equal(t, "delivered", out.OrderStatus)
	// time.Time 与文本两种形态都归一到规范格式
	require.NotNil(t, out.OrderPurchaseTimestamp)
	assert.Equal(t, "2018-07-05 13:45:00", *out.OrderPurchaseTimestamp)
	require.NotNil(t, out.OrderApprovedAt)
	assert.Equal(t, "2018-07-05 14:00:00", *out.OrderApprovedAt)
	assert.Nil(t, out.OrderDeliveredCarrierDate)
	assert.Equal(t, "2026-08-30", out.IngestionDate)
}

func TestConvertProductNullableColumns(t *testing.T) {
	rec := record{
		"product_id":            "p1",
		"product_category_name": nil,
		"product_weight_g":      int64(500),
		"product_length_cm":     nil,
	}

	out := convertProduct(rec, "2026-08-30")

	assert.Nil(t, out.ProductCategoryName)
	require.NotNil(t, out.ProductWeightG)
	assert.Equal(t, float64(500), *out.ProductWeightG)
	assert.Nil(t, out.ProductLengthCm)
}

func TestConvertCustomerZipPadding(t *testing.T) {
	rec := record{
		"customer_id":              "c1",
		"customer_unique_id":       "u1",
		"customer_zip_code_prefix": int64(1001),
		"customer_city":            "sao paulo",
		"customer_state":           "SP",
	}

	out := convertCustomer(rec, "2026-08-30")

	// 邮编前缀左补零到 5 位
	assert.Equal(t, "01001", out.CustomerZipCodePrefix)
}

func TestConvertOrderItemNumericColumns(t *testing.T) {
	rec := record{
		"order_id":      "o1",
		"order_item_id": int64(2),
		"product_id":    "p1",
		"seller_id":     "s1",
		"price":         "129.90",
		"freight_value": 15.1,
	}

	out := convertOrderItem(rec, "2026-08-30")

	assert.Equal(t, int32(2), out.OrderItemID)
	assert.Equal(t, 129.90, out.Price)
	assert.Equal(t, 15.1, out.FreightValue)
}

func TestZipPrefixAlreadyFiveDigits(t *testing.T) {
	rec := record{"geolocation_zip_code_prefix": "99990"}
	assert.Equal(t, "99990", zipPrefix(rec, "geolocation_zip_code_prefix"))
}
