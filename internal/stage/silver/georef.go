package silver

import (
	"sort"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/internal/textnorm"
)

// BuildGeoReference 将逐条地理样本折叠为每个邮编前缀一行的参考表
// 聚合口径：城市/州取众数，经纬度取算术平均；众数同频时取字典序最小值
// （固定的确定性决胜规则）。输出按前缀首次出现顺序排列，保证逐字节可复现。
func BuildGeoReference(samples []model.RawGeolocation) []model.GeoReference {
	type group struct {
		cities []string
		states []string
		latSum float64
		lngSum float64
		count  int
	}

	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, s := range samples {
		g, ok := groups[s.GeolocationZipCodePrefix]
		if !ok {
			g = &group{}
			groups[s.GeolocationZipCodePrefix] = g
			order = append(order, s.GeolocationZipCodePrefix)
		}
		g.cities = append(g.cities, s.GeolocationCity)
		g.states = append(g.states, s.GeolocationState)
		g.latSum += s.GeolocationLat
		g.lngSum += s.GeolocationLng
		g.count++
	}

	refs := make([]model.GeoReference, 0, len(groups))
	for _, prefix := range order {
		g := groups[prefix]
		city := modeValue(g.cities)
		refs = append(refs, model.GeoReference{
			GeolocationZipCodePrefix:  prefix,
			GeolocationCity:           city,
			GeolocationState:          modeValue(g.states),
			GeolocationLat:            g.latSum / float64(g.count),
			GeolocationLng:            g.lngSum / float64(g.count),
			GeolocationCityNormalized: textnorm.NormalizeString(city),
		})
	}

	return refs
}

// modeValue 最高频值，同频取字典序最小
func modeValue(values []string) string {
	if len(values) == 0 {
		return ""
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	candidates := make([]string, 0, len(counts))
	for v := range counts {
		candidates = append(candidates, v)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	return candidates[0]
}
