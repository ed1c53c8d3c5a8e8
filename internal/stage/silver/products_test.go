package silver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odp/dpbatch/internal/model"
)

func productWithWeight(id string, weight float64) model.RawProduct {
	return model.RawProduct{
		ProductID:       id,
		ProductWeightG:  model.F64Ptr(weight),
		ProductLengthCm: model.F64Ptr(10),
		ProductHeightCm: model.F64Ptr(10),
		ProductWidthCm:  model.F64Ptr(10),
	}
}

func TestEnrichProductsZeroWeightGetsMedian(t *testing.T) {
	raws := []model.RawProduct{
		productWithWeight("p0", 0),
		productWithWeight("p1", 1000),
		productWithWeight("p2", 2000),
		productWithWeight("p3", 3000),
	}

	out := EnrichProducts(raws)
	require.Len(t, out, 4)

	// 零值替换为正值中位数 2000
	assert.Equal(t, float64(2000), out[0].ProductWeightG)
	assert.Equal(t, float64(1000), out[1].ProductWeightG)
}

func TestEnrichProductsAllDimensionsPositive(t *testing.T) {
	raws := []model.RawProduct{
		{ProductID: "p1"},
		productWithWeight("p2", 500),
		{
			ProductID:       "p3",
			ProductWeightG:  model.F64Ptr(0),
			ProductLengthCm: model.F64Ptr(20),
			ProductHeightCm: model.F64Ptr(5),
			ProductWidthCm:  model.F64Ptr(15),
		},
	}

	for _, p := range EnrichProducts(raws) {
		assert.Greater(t, p.ProductWeightG, float64(0), p.ProductID)
		assert.Greater(t, p.ProductLengthCm, float64(0), p.ProductID)
		assert.Greater(t, p.ProductHeightCm, float64(0), p.ProductID)
		assert.Greater(t, p.ProductWidthCm, float64(0), p.ProductID)
		assert.Greater(t, p.VolumeCm3, float64(0), p.ProductID)
	}
}

func TestEnrichProductsVolume(t *testing.T) {
	raws := []model.RawProduct{
		{
			ProductID:       "p1",
			ProductWeightG:  model.F64Ptr(100),
			ProductLengthCm: model.F64Ptr(2),
			ProductHeightCm: model.F64Ptr(3),
			ProductWidthCm:  model.F64Ptr(4),
		},
	}

	out := EnrichProducts(raws)
	require.Len(t, out, 1)
	assert.Equal(t, float64(24), out[0].VolumeCm3)
}

func TestEnrichProductsCategoryDefaultAndNormalize(t *testing.T) {
	raws := []model.RawProduct{
		productWithWeight("p1", 100),
		{
			ProductID:           "p2",
			ProductCategoryName: model.StrPtr("Móveis-Decoração"),
			ProductWeightG:      model.F64Ptr(100),
			ProductLengthCm:     model.F64Ptr(10),
			ProductHeightCm:     model.F64Ptr(10),
			ProductWidthCm:      model.F64Ptr(10),
		},
	}

	out := EnrichProducts(raws)
	require.Len(t, out, 2)

	assert.Equal(t, "outros", out[0].ProductCategoryName)
	assert.Equal(t, "moveis decoracao", out[1].ProductCategoryName)
}

func TestEnrichProductsNoPositiveValuesLeftUntouched(t *testing.T) {
	raws := []model.RawProduct{
		{ProductID: "p1", ProductWeightG: model.F64Ptr(0)},
		{ProductID: "p2"},
	}

	out := EnrichProducts(raws)
	require.Len(t, out, 2)

	// 全列无正值时中位数无定义，值原样保留
	assert.Equal(t, float64(0), out[0].ProductWeightG)
	assert.Equal(t, float64(0), out[1].ProductWeightG)
}

func TestPositiveMedianEvenCount(t *testing.T) {
	raws := []model.RawProduct{
		productWithWeight("p1", 100),
		productWithWeight("p2", 300),
	}

	med, ok := positiveMedian(raws, func(p model.RawProduct) *float64 { return p.ProductWeightG })
	require.True(t, ok)
	assert.Equal(t, float64(200), med)
}
