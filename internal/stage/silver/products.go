package silver

import (
	"sort"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/internal/textnorm"
)

// EnrichProducts 清洗商品
// 类目缺失补 "outros" 后规范化；四个物理维度列各自独立地把空值与零值
// 替换为该列全量严格正值的中位数（中位数每列只算一次）；体积 = 长×高×宽。
// 某列完全没有正值时中位数无定义，该列原样保留（由调用方告警）。
func EnrichProducts(raws []model.RawProduct) []model.SilverProduct {
	weightMed, weightOK := positiveMedian(raws, func(p model.RawProduct) *float64 { return p.ProductWeightG })
	lengthMed, lengthOK := positiveMedian(raws, func(p model.RawProduct) *float64 { return p.ProductLengthCm })
	heightMed, heightOK := positiveMedian(raws, func(p model.RawProduct) *float64 { return p.ProductHeightCm })
	widthMed, widthOK := positiveMedian(raws, func(p model.RawProduct) *float64 { return p.ProductWidthCm })

	out := make([]model.SilverProduct, 0, len(raws))
	for _, r := range raws {
		category := "outros"
		if r.ProductCategoryName != nil {
			category = *r.ProductCategoryName
		}
		category = textnorm.NormalizeString(category)

		weight := fillDimension(r.ProductWeightG, weightMed, weightOK)
		length := fillDimension(r.ProductLengthCm, lengthMed, lengthOK)
		height := fillDimension(r.ProductHeightCm, heightMed, heightOK)
		width := fillDimension(r.ProductWidthCm, widthMed, widthOK)

		out = append(out, model.SilverProduct{
			ProductID:                r.ProductID,
			ProductCategoryName:      category,
			ProductNameLenght:        r.ProductNameLenght,
			ProductDescriptionLenght: r.ProductDescriptionLenght,
			ProductPhotosQty:         r.ProductPhotosQty,
			ProductWeightG:           weight,
			ProductLengthCm:          length,
			ProductHeightCm:          height,
			ProductWidthCm:           width,
			VolumeCm3:                length * height * width,
		})
	}

	return out
}

// positiveMedian 一列严格正值的中位数（偶数个取中间两值平均）
func positiveMedian(raws []model.RawProduct, get func(model.RawProduct) *float64) (float64, bool) {
	values := make([]float64, 0, len(raws))
	for _, r := range raws {
		if v := get(r); v != nil && *v > 0 {
			values = append(values, *v)
		}
	}
	if len(values) == 0 {
		return 0, false
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], true
	}
	return (values[mid-1] + values[mid]) / 2, true
}

// fillDimension 空值与零值替换为列中位数
func fillDimension(v *float64, median float64, ok bool) float64 {
	if v == nil || *v == 0 {
		if ok {
			return median
		}
		if v == nil {
			return 0
		}
		return *v
	}
	return *v
}
