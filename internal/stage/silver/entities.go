package silver

import (
	"fmt"
	"strings"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/internal/textnorm"
)

// 客户/卖家的地理富化：按邮编前缀左连接地理参考（参考表前缀唯一，
// 富化不增不减行），city_final 优先取参考表的规范化城市，无匹配时回退
// 为实体自带城市的规范化结果。

// geoIndex 前缀 → 参考行索引
func geoIndex(refs []model.GeoReference) map[string]model.GeoReference {
	idx := make(map[string]model.GeoReference, len(refs))
	for _, r := range refs {
		idx[r.GeolocationZipCodePrefix] = r
	}
	return idx
}

// locationFull 拼装展示用完整地名（固定国家后缀）
func locationFull(cityFinal, state string) string {
	return fmt.Sprintf("%s, %s, Brazil", textnorm.Title(cityFinal), strings.ToUpper(state))
}

// EnrichCustomers 地理富化客户表
func EnrichCustomers(raws []model.RawCustomer, refs []model.GeoReference) []model.SilverCustomer {
	idx := geoIndex(refs)

	out := make([]model.SilverCustomer, 0, len(raws))
	for _, r := range raws {
		row := model.SilverCustomer{
			CustomerID:            r.CustomerID,
			CustomerUniqueID:      r.CustomerUniqueID,
			CustomerZipCodePrefix: r.CustomerZipCodePrefix,
			CustomerCity:          r.CustomerCity,
			CustomerState:         r.CustomerState,
		}

		if ref, ok := idx[r.CustomerZipCodePrefix]; ok {
			row.GeolocationLat = model.F64Ptr(ref.GeolocationLat)
			row.GeolocationLng = model.F64Ptr(ref.GeolocationLng)
			row.GeolocationCityNormalized = model.StrPtr(ref.GeolocationCityNormalized)
			row.CityFinal = ref.GeolocationCityNormalized
		} else {
			row.CityFinal = textnorm.NormalizeString(r.CustomerCity)
		}
		row.LocationFull = locationFull(row.CityFinal, r.CustomerState)

		out = append(out, row)
	}

	return out
}

// EnrichSellers 地理富化卖家表
func EnrichSellers(raws []model.RawSeller, refs []model.GeoReference) []model.SilverSeller {
	idx := geoIndex(refs)

	out := make([]model.SilverSeller, 0, len(raws))
	for _, r := range raws {
		row := model.SilverSeller{
			SellerID:            r.SellerID,
			SellerZipCodePrefix: r.SellerZipCodePrefix,
			SellerCity:          r.SellerCity,
			SellerState:         r.SellerState,
		}

		if ref, ok := idx[r.SellerZipCodePrefix]; ok {
			row.GeolocationLat = model.F64Ptr(ref.GeolocationLat)
			row.GeolocationLng = model.F64Ptr(ref.GeolocationLng)
			row.GeolocationCityNormalized = model.StrPtr(ref.GeolocationCityNormalized)
			row.CityFinal = ref.GeolocationCityNormalized
		} else {
			row.CityFinal = textnorm.NormalizeString(r.SellerCity)
		}
		row.LocationFull = locationFull(row.CityFinal, r.SellerState)

		out = append(out, row)
	}

	return out
}
