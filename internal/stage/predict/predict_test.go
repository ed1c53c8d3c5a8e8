package predict

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/pkg/errorutil"
)

func testArtifacts() *Artifacts {
	return &Artifacts{
		Model: &LogisticModel{
			Intercept: -2,
			Coefficients: map[string]float64{
				featDensity:   0.5,
				featRouteRisk: 10,
			},
		},
		Config: &ModelConfig{
			Features: []string{
				featDistanceKm, featHandlingHours, featPurchaseDay,
				featDensity, featRouteRisk, featCategoryRisk,
			},
			BestThreshold: 0.5,
		},
		RouteRisk:    map[string]float64{"SP_RJ": 0.30},
		CategoryRisk: map[string]float64{},
	}
}

func scoringFixture() ([]model.SilverOrder, []model.SilverOrderItem, []model.SilverProduct, []model.SilverCustomer, []model.SilverSeller) {
	orders := []model.SilverOrder{
		{
			OrderID:                "o1",
			CustomerID:             "c1",
			OrderStatus:            "shipped",
			OrderPurchaseTimestamp: model.StrPtr("2018-07-02 10:00:00"),
			OrderApprovedAt:        model.StrPtr("2018-07-02 12:00:00"),
		},
	}
	items := []model.SilverOrderItem{
		{OrderID: "o1", OrderItemID: 1, ProductID: "p_light", SellerID: "s1"},
		{OrderID: "o1", OrderItemID: 2, ProductID: "p_heavy", SellerID: "s1"},
	}
	products := []model.SilverProduct{
		{ProductID: "p_light", ProductCategoryName: "outros", ProductWeightG: 100, VolumeCm3: 999},
		{ProductID: "p_heavy", ProductCategoryName: "outros", ProductWeightG: 9000, VolumeCm3: 999},
	}
	customers := []model.SilverCustomer{
		{CustomerID: "c1", CustomerState: "RJ", GeolocationLat: model.F64Ptr(-22.90), GeolocationLng: model.F64Ptr(-43.17)},
	}
	sellers := []model.SilverSeller{
		{SellerID: "s1", SellerState: "SP", GeolocationLat: model.F64Ptr(-23.55), GeolocationLng: model.F64Ptr(-46.63)},
	}
	return orders, items, products, customers, sellers
}

func TestScoreAggregatesMaxPerOrder(t *testing.T) {
	orders, items, products, customers, sellers := scoringFixture()
	artifacts := testArtifacts()
	now := time.Date(2018, 9, 4, 0, 0, 0, 0, time.UTC)

	results := Score(orders, items, products, customers, sellers, artifacts, now)
	require.Len(t, results, 1)
	assert.Equal(t, "o1", results[0].OrderID)

	// 订单概率 = 两条明细概率的最大值（重货密度更高风险更大）
	light := artifacts.Model.PredictProba(map[string]float64{
		featDensity: Density(100, 999), featRouteRisk: 0.30,
	})
	heavy := artifacts.Model.PredictProba(map[string]float64{
		featDensity: Density(9000, 999), featRouteRisk: 0.30,
	})
	require.Greater(t, heavy, light)
	assert.InDelta(t, heavy, results[0].ProbabilidadeAtraso, 1e-9)
}

func TestScoreAlertAtThreshold(t *testing.T) {
	orders, items, products, customers, sellers := scoringFixture()
	artifacts := testArtifacts()
	now := time.Date(2018, 9, 4, 0, 0, 0, 0, time.UTC)

	// 截距 0 且系数清空：概率恰为 0.5，阈值 0.5 含等号应告警
	artifacts.Model = &LogisticModel{Intercept: 0, Coefficients: map[string]float64{}}

	results := Score(orders, items, products, customers, sellers, artifacts, now)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.5, results[0].ProbabilidadeAtraso, 1e-9)
	assert.Equal(t, int32(1), results[0].AlertaAtraso)
}

func TestScoreExcludesUnjoinableItems(t *testing.T) {
	orders, items, products, customers, sellers := scoringFixture()
	artifacts := testArtifacts()
	now := time.Date(2018, 9, 4, 0, 0, 0, 0, time.UTC)

	// 追加两条缺连接侧的明细：缺商品、缺卖家，均应静默排除
	items = append(items,
		model.SilverOrderItem{OrderID: "o1", OrderItemID: 3, ProductID: "missing", SellerID: "s1"},
		model.SilverOrderItem{OrderID: "o1", OrderItemID: 4, ProductID: "p_light", SellerID: "missing"},
	)

	results := Score(orders, items, products, customers, sellers, artifacts, now)
	require.Len(t, results, 1)

	// 无任何可评分明细的订单不产出行
	orphan := []model.SilverOrder{{OrderID: "o2", CustomerID: "missing", OrderStatus: "invoiced"}}
	orphanItems := []model.SilverOrderItem{{OrderID: "o2", OrderItemID: 1, ProductID: "p_light", SellerID: "s1"}}
	assert.Empty(t, Score(orphan, orphanItems, products, customers, sellers, artifacts, now))
}

func TestScoreDeterministicOrder(t *testing.T) {
	orders, items, products, customers, sellers := scoringFixture()
	orders = append(orders, model.SilverOrder{OrderID: "a0", CustomerID: "c1", OrderStatus: "invoiced"})
	items = append(items, model.SilverOrderItem{OrderID: "a0", OrderItemID: 1, ProductID: "p_light", SellerID: "s1"})

	artifacts := testArtifacts()
	now := time.Date(2018, 9, 4, 0, 0, 0, 0, time.UTC)

	results := Score(orders, items, products, customers, sellers, artifacts, now)
	require.Len(t, results, 2)

	// 输出按 order_id 排序
	assert.Equal(t, "a0", results[0].OrderID)
	assert.Equal(t, "o1", results[1].OrderID)
}

func TestInFlightStatuses(t *testing.T) {
	for _, status := range []string{"shipped", "processing", "invoiced"} {
		_, ok := inFlightStatuses[status]
		assert.True(t, ok, status)
	}
	for _, status := range []string{"delivered", "canceled", ""} {
		_, ok := inFlightStatuses[status]
		assert.False(t, ok, status)
	}
}

func TestLogisticModelPredictProba(t *testing.T) {
	m := &LogisticModel{Intercept: 0, Coefficients: map[string]float64{"x": 1}}

	assert.InDelta(t, 0.5, m.PredictProba(map[string]float64{"x": 0}), 1e-9)
	assert.Greater(t, m.PredictProba(map[string]float64{"x": 2}), 0.8)
	// 缺失特征按 0 参与
	assert.InDelta(t, 0.5, m.PredictProba(map[string]float64{}), 1e-9)
}

func TestLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write(modelFile, `{"intercept": -1.5, "coefficients": {"distancia_km": 0.001}}`)
	write(modelConfigFile, `{"features": ["distancia_km"], "best_threshold": 0.42}`)
	write(routeRiskFile, `{"SP_RJ": 0.3}`)
	write(categoryRiskFile, `{"moveis": 0.11}`)

	a, err := LoadArtifacts(dir)
	require.NoError(t, err)
	assert.InDelta(t, -1.5, a.Model.Intercept, 1e-9)
	assert.Equal(t, []string{"distancia_km"}, a.Config.Features)
	assert.InDelta(t, 0.42, a.Config.BestThreshold, 1e-9)
	assert.InDelta(t, 0.3, a.RouteRisk["SP_RJ"], 1e-9)
	assert.InDelta(t, 0.11, a.CategoryRisk["moveis"], 1e-9)
}

func TestLoadArtifactsMissingIsFatal(t *testing.T) {
	_, err := LoadArtifacts(t.TempDir())
	require.Error(t, err)
	assert.True(t, errorutil.IsFatal(err))
}

func TestReferenceNow(t *testing.T) {
	orders := []model.SilverOrder{
		{OrderID: "o1", OrderPurchaseTimestamp: model.StrPtr("2018-08-01 10:00:00")},
		{OrderID: "o2", OrderPurchaseTimestamp: model.StrPtr("2018-09-03 10:00:00")},
		{OrderID: "o3"},
	}

	// 参考"现在" = 全集最大购买时间 + 一天
	want := time.Date(2018, 9, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, want, referenceNow(orders))
}
