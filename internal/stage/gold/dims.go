package gold

import (
	"odp/dpbatch/internal/model"
)

// 州 → 地理大区映射
var stateRegions = map[string]string{
	"AM": "Norte", "RR": "Norte", "AP": "Norte", "PA": "Norte",
	"TO": "Norte", "RO": "Norte", "AC": "Norte",
	"MA": "Nordeste", "PI": "Nordeste", "CE": "Nordeste", "RN": "Nordeste",
	"PE": "Nordeste", "PB": "Nordeste", "SE": "Nordeste", "AL": "Nordeste",
	"BA": "Nordeste",
	"MT": "Centro-Oeste", "MS": "Centro-Oeste", "GO": "Centro-Oeste", "DF": "Centro-Oeste",
	"SP": "Sudeste", "RJ": "Sudeste", "ES": "Sudeste", "MG": "Sudeste",
	"PR": "Sul", "RS": "Sul", "SC": "Sul",
}

// Region 州代码对应的大区，未知州归入 "Outros"
func Region(state string) string {
	if region, ok := stateRegions[state]; ok {
		return region
	}
	return "Outros"
}

// BuildDimCustomers 客户维度：固定列投影并按自然键去重（保留首次出现）
func BuildDimCustomers(customers []model.SilverCustomer) []model.DimCustomer {
	seen := make(map[string]struct{}, len(customers))
	out := make([]model.DimCustomer, 0, len(customers))

	for _, c := range customers {
		if _, ok := seen[c.CustomerID]; ok {
			continue
		}
		seen[c.CustomerID] = struct{}{}

		out = append(out, model.DimCustomer{
			CustomerID:       c.CustomerID,
			CustomerUniqueID: c.CustomerUniqueID,
			CityFinal:        c.CityFinal,
			CustomerState:    c.CustomerState,
			Regiao:           Region(c.CustomerState),
			LocationFull:     c.LocationFull,
			GeolocationLat:   c.GeolocationLat,
			GeolocationLng:   c.GeolocationLng,
		})
	}

	return out
}

// BuildDimProducts 商品维度
func BuildDimProducts(products []model.SilverProduct) []model.DimProduct {
	seen := make(map[string]struct{}, len(products))
	out := make([]model.DimProduct, 0, len(products))

	for _, p := range products {
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}

		out = append(out, model.DimProduct{
			ProductID:           p.ProductID,
			ProductCategoryName: p.ProductCategoryName,
			ProductWeightG:      p.ProductWeightG,
			VolumeCm3:           p.VolumeCm3,
		})
	}

	return out
}

// BuildDimSellers 卖家维度
func BuildDimSellers(sellers []model.SilverSeller) []model.DimSeller {
	seen := make(map[string]struct{}, len(sellers))
	out := make([]model.DimSeller, 0, len(sellers))

	for _, s := range sellers {
		if _, ok := seen[s.SellerID]; ok {
			continue
		}
		seen[s.SellerID] = struct{}{}

		out = append(out, model.DimSeller{
			SellerID:       s.SellerID,
			CityFinal:      s.CityFinal,
			SellerState:    s.SellerState,
			LocationFull:   s.LocationFull,
			GeolocationLat: s.GeolocationLat,
			GeolocationLng: s.GeolocationLng,
		})
	}

	return out
}
