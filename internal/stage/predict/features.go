package predict

import (
	"math"
	"time"
)

// 特征名（与训练侧 model_config.json 的 features 清单对应）
const (
	featDistanceKm    = "distancia_km"
	featHandlingHours = "handling_time_h"
	featPurchaseDay   = "dia_semana_compra"
	featDensity       = "densidade_prod"
	featRouteRisk     = "risk_route"
	featCategoryRisk  = "risk_category"
)

// 未映射路线/品类的先验风险，负/缺失处理时长的兜底小时数
const (
	riskFallback          = 0.07
	handlingFallbackHours = 24.0
)

// Haversine 大圆距离（公里，地球半径 6371 km）
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const r = 6371.0

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * r * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// HandlingHours 处理时长（小时）
// 已交承运商取 (承运商交接 − 审批)；未交接取 (now − 审批)；
// 审批缺失或结果为负统一回退到 24 小时
func HandlingHours(approved, carrier *time.Time, now time.Time) float64 {
	if approved == nil {
		return handlingFallbackHours
	}

	var hours float64
	if carrier != nil {
		hours = carrier.Sub(*approved).Hours()
	} else {
		hours = now.Sub(*approved).Hours()
	}

	if hours < 0 {
		return handlingFallbackHours
	}
	return hours
}

// PurchaseWeekday 购买时间的周几索引（周一 = 0）
func PurchaseWeekday(t time.Time) float64 {
	return float64((int(t.Weekday()) + 6) % 7)
}

// Density 商品密度（克每立方厘米，分母 +1 规避零体积）
func Density(weightG, volumeCm3 float64) float64 {
	return weightG / (volumeCm3 + 1)
}

// RouteKey 路线键（卖家州_客户州）
func RouteKey(sellerState, customerState string) string {
	return sellerState + "_" + customerState
}

// LookupRisk 风险查表，未映射键回退到先验
func LookupRisk(table map[string]float64, key string) float64 {
	if risk, ok := table[key]; ok {
		return risk
	}
	return riskFallback
}
