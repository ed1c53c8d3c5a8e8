package silver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odp/dpbatch/internal/model"
)

func TestEnrichCustomersWithGeoMatch(t *testing.T) {
	refs := []model.GeoReference{
		{
			GeolocationZipCodePrefix:  "01001",
			GeolocationCity:           "são paulo",
			GeolocationState:          "SP",
			GeolocationLat:            -23.55,
			GeolocationLng:            -46.63,
			GeolocationCityNormalized: "sao paulo",
		},
	}
	raws := []model.RawCustomer{
		{
			CustomerID:            "c1",
			CustomerUniqueID:      "u1",
			CustomerZipCodePrefix: "01001",
			CustomerCity:          "sao paulo zona sul",
			CustomerState:         "sp",
		},
	}

	out := EnrichCustomers(raws, refs)
	require.Len(t, out, 1)

	// 匹配时城市取参考表规范化值，坐标取参考表均值
	assert.Equal(t, "sao paulo", out[0].CityFinal)
	require.NotNil(t, out[0].GeolocationLat)
	assert.InDelta(t, -23.55, *out[0].GeolocationLat, 1e-9)
	assert.Equal(t, "Sao Paulo, SP, Brazil", out[0].LocationFull)
}

func TestEnrichCustomersWithoutGeoMatch(t *testing.T) {
	raws := []model.RawCustomer{
		{
			CustomerID:            "c1",
			CustomerZipCodePrefix: "99999",
			CustomerCity:          "Mogi-Mirim",
			CustomerState:         "SP",
		},
	}

	out := EnrichCustomers(raws, nil)
	require.Len(t, out, 1)

	// 无匹配回退到自带城市的规范化结果，坐标缺失
	assert.Equal(t, "mogi mirim", out[0].CityFinal)
	assert.Nil(t, out[0].GeolocationLat)
	assert.Nil(t, out[0].GeolocationLng)
	assert.Equal(t, "Mogi Mirim, SP, Brazil", out[0].LocationFull)
}

func TestEnrichSellersPreservesRowCount(t *testing.T) {
	refs := []model.GeoReference{
		{GeolocationZipCodePrefix: "01001", GeolocationCityNormalized: "sao paulo"},
	}
	raws := []model.RawSeller{
		{SellerID: "s1", SellerZipCodePrefix: "01001", SellerCity: "sao paulo", SellerState: "SP"},
		{SellerID: "s2", SellerZipCodePrefix: "77777", SellerCity: "curitiba", SellerState: "PR"},
	}

	out := EnrichSellers(raws, refs)
	require.Len(t, out, 2)

	assert.Equal(t, "sao paulo", out[0].CityFinal)
	assert.Equal(t, "curitiba", out[1].CityFinal)
	assert.Equal(t, "Curitiba, PR, Brazil", out[1].LocationFull)
}
