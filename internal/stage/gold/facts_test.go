package gold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odp/dpbatch/internal/model"
)

func TestBuildFactSalesJoinsOrders(t *testing.T) {
	orders := []model.SilverOrder{
		{
			OrderID:                "o1",
			CustomerID:             "c1",
			OrderStatus:            "delivered",
			OrderPurchaseTimestamp: model.StrPtr("2018-07-05 13:45:00"),
			DeliveryDays:           model.I32Ptr(8),
			DelayDiffDays:          model.I32Ptr(-2),
		},
	}
	items := []model.SilverOrderItem{
		{OrderID: "o1", OrderItemID: 1, ProductID: "p1", SellerID: "s1", Price: 100, FreightValue: 20, TotalValue: 120},
	}

	out := BuildFactSales(items, orders)
	require.Len(t, out, 1)

	row := out[0]
	assert.Equal(t, "c1", row.CustomerID)
	assert.Equal(t, "delivered", row.OrderStatus)
	require.NotNil(t, row.HorarioVenda)
	assert.Equal(t, "2018-07-05 13:45:00", *row.HorarioVenda)

	// 日历外键由购买时间戳确定性推导
	require.NotNil(t, row.FkDataVenda)
	assert.Equal(t, int32(20180705), *row.FkDataVenda)
	require.NotNil(t, row.DeliveryDays)
	assert.Equal(t, int32(8), *row.DeliveryDays)
}

func TestBuildFactSalesOrderMissing(t *testing.T) {
	items := []model.SilverOrderItem{
		{OrderID: "orphan", OrderItemID: 1, Price: 10, FreightValue: 2, TotalValue: 12},
	}

	// 左连接语义：无匹配订单时保留明细行，订单侧列缺失
	out := BuildFactSales(items, nil)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].CustomerID)
	assert.Nil(t, out[0].HorarioVenda)
	assert.Nil(t, out[0].FkDataVenda)
	assert.Equal(t, float64(12), out[0].TotalValue)
}

func TestBuildFactReviewsDeduplicates(t *testing.T) {
	reviews := []model.SilverReview{
		{ReviewID: "r1", OrderID: "o1", ReviewScore: 5},
		{ReviewID: "r1", OrderID: "o1", ReviewScore: 1},
		{ReviewID: "r1", OrderID: "o2", ReviewScore: 4},
	}

	out := BuildFactReviews(reviews)
	require.Len(t, out, 2)

	// (review_id, order_id) 唯一，重复保留首次出现
	assert.Equal(t, int32(5), out[0].ReviewScore)
	assert.Equal(t, "o2", out[1].OrderID)
}

func TestBuildFactsIdempotent(t *testing.T) {
	orders := []model.SilverOrder{
		{OrderID: "o1", CustomerID: "c1", OrderPurchaseTimestamp: model.StrPtr("2018-01-01 09:00:00")},
		{OrderID: "o2", CustomerID: "c2", OrderPurchaseTimestamp: model.StrPtr("2018-01-02 09:00:00")},
	}
	items := []model.SilverOrderItem{
		{OrderID: "o1", OrderItemID: 1, ProductID: "p1", SellerID: "s1"},
		{OrderID: "o2", OrderItemID: 1, ProductID: "p2", SellerID: "s2"},
	}

	// 相同输入重复构建产出完全一致
	assert.Equal(t, BuildFactSales(items, orders), BuildFactSales(items, orders))
	assert.Equal(t, BuildCalendar(), BuildCalendar())
}
