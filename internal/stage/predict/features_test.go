package predict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// 圣保罗 ↔ 里约热内卢约 360 km
	d := Haversine(-23.5505, -46.6333, -22.9068, -43.1729)
	assert.InDelta(t, 360, d, 5)

	// 同一点距离为零
	assert.InDelta(t, 0, Haversine(-23.55, -46.63, -23.55, -46.63), 1e-9)
}

func TestHandlingHoursWithCarrierDate(t *testing.T) {
	approved := time.Date(2018, 7, 1, 8, 0, 0, 0, time.UTC)
	carrier := time.Date(2018, 7, 2, 20, 0, 0, 0, time.UTC)
	now := time.Date(2018, 7, 10, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 36, HandlingHours(&approved, &carrier, now), 1e-9)
}

func TestHandlingHoursPendingUsesReferenceNow(t *testing.T) {
	// 未交承运商且 now = 审批 + 10 小时：取 10 小时而非 24 小时兜底
	approved := time.Date(2018, 7, 1, 8, 0, 0, 0, time.UTC)
	now := approved.Add(10 * time.Hour)

	assert.InDelta(t, 10, HandlingHours(&approved, nil, now), 1e-9)
}

func TestHandlingHoursFallbacks(t *testing.T) {
	approved := time.Date(2018, 7, 1, 8, 0, 0, 0, time.UTC)
	carrier := approved.Add(-2 * time.Hour)
	now := time.Date(2018, 7, 10, 0, 0, 0, 0, time.UTC)

	// 负时长与缺失审批统一回退 24 小时
	assert.Equal(t, 24.0, HandlingHours(&approved, &carrier, now))
	assert.Equal(t, 24.0, HandlingHours(nil, nil, now))
}

func TestPurchaseWeekday(t *testing.T) {
	monday := time.Date(2018, 7, 2, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2018, 7, 8, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, PurchaseWeekday(monday))
	assert.Equal(t, 6.0, PurchaseWeekday(sunday))
}

func TestDensity(t *testing.T) {
	assert.InDelta(t, 0.5, Density(500, 999), 1e-9)
	// 零体积不除零
	assert.Equal(t, 100.0, Density(100, 0))
}

func TestRouteKey(t *testing.T) {
	assert.Equal(t, "SP_RJ", RouteKey("SP", "RJ"))
}

func TestLookupRiskFallback(t *testing.T) {
	table := map[string]float64{"SP_SP": 0.12}

	assert.Equal(t, 0.12, LookupRisk(table, "SP_SP"))
	// 未映射键回退先验 0.07
	assert.Equal(t, 0.07, LookupRisk(table, "SP_RJ"))
	assert.Equal(t, 0.07, LookupRisk(nil, "qualquer"))
}
