package silver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odp/dpbatch/internal/model"
)

func geoSample(prefix, city, state string, lat, lng float64) model.RawGeolocation {
	return model.RawGeolocation{
		GeolocationZipCodePrefix: prefix,
		GeolocationCity:          city,
		GeolocationState:         state,
		GeolocationLat:           lat,
		GeolocationLng:           lng,
	}
}

func TestBuildGeoReference(t *testing.T) {
	samples := []model.RawGeolocation{
		geoSample("01001", "sao paulo", "SP", -23.55, -46.63),
		geoSample("01001", "são paulo", "SP", -23.56, -46.64),
		geoSample("01001", "sao paulo", "SP", -23.54, -46.62),
		geoSample("20040", "rio de janeiro", "RJ", -22.90, -43.18),
	}

	refs := BuildGeoReference(samples)
	require.Len(t, refs, 2)

	// 每个前缀恰好一行，顺序按首次出现
	assert.Equal(t, "01001", refs[0].GeolocationZipCodePrefix)
	assert.Equal(t, "20040", refs[1].GeolocationZipCodePrefix)

	// 城市取众数，经纬度取平均
	sp := refs[0]
	assert.Equal(t, "sao paulo", sp.GeolocationCity)
	assert.Equal(t, "SP", sp.GeolocationState)
	assert.InDelta(t, -23.55, sp.GeolocationLat, 1e-9)
	assert.InDelta(t, -46.63, sp.GeolocationLng, 1e-9)
	assert.Equal(t, "sao paulo", sp.GeolocationCityNormalized)
}

func TestBuildGeoReferenceCoordinateBounds(t *testing.T) {
	samples := []model.RawGeolocation{
		geoSample("01001", "sao paulo", "SP", -23.50, -46.60),
		geoSample("01001", "sao paulo", "SP", -23.60, -46.70),
	}

	refs := BuildGeoReference(samples)
	require.Len(t, refs, 1)

	// 平均值必然落在样本最小/最大之间
	assert.GreaterOrEqual(t, refs[0].GeolocationLat, -23.60)
	assert.LessOrEqual(t, refs[0].GeolocationLat, -23.50)
	assert.GreaterOrEqual(t, refs[0].GeolocationLng, -46.70)
	assert.LessOrEqual(t, refs[0].GeolocationLng, -46.60)
}

func TestModeValueTieBreak(t *testing.T) {
	// 同频时取字典序最小
	assert.Equal(t, "aaa", modeValue([]string{"bbb", "aaa"}))
	assert.Equal(t, "bbb", modeValue([]string{"bbb", "bbb", "aaa"}))
	assert.Equal(t, "", modeValue(nil))
}
