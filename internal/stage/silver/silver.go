package silver

import (
	"context"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/internal/sink"
	"odp/dpbatch/internal/stage"
	"odp/dpbatch/pkg/errorutil"
	"odp/dpbatch/pkg/infra/minio"
	"odp/dpbatch/pkg/logger"
	"odp/dpbatch/pkg/parquetx"
)

// Stage silver 阶段：地理参考折叠 + 各实体清洗富化
// 各实体独立处理，单实体失败记录结果后继续其余实体
type Stage struct {
	store        *minio.Store
	writer       *sink.Writer
	bronzeBucket string
	silverBucket string
	logger       logger.Logger
}

// NewStage 创建 silver 阶段实例
func NewStage(store *minio.Store, writer *sink.Writer, bronzeBucket, silverBucket string, log logger.Logger) *Stage {
	return &Stage{
		store:        store,
		writer:       writer,
		bronzeBucket: bronzeBucket,
		silverBucket: silverBucket,
		logger:       log,
	}
}

// Name 阶段名
func (s *Stage) Name() string {
	return stage.NameSilver
}

// Run 执行 silver 转换
func (s *Stage) Run(ctx context.Context) ([]stage.TableResult, error) {
	results := make([]stage.TableResult, 0, 8)

	// 1. 地理参考（独立落地的富化资产，同时供客户/卖家富化使用）
	// 参考构建失败不中止阶段：客户/卖家按无匹配回退到自带城市
	var refs []model.GeoReference
	samples, err := readBronze[model.RawGeolocation](ctx, s)
	if err != nil {
		results = append(results, stage.Fail(model.GeoReference{}.TableName(),
			errorutil.RecoverableWrap("failed to read geolocation samples", err)))
		s.logger.Warnf(ctx, "geo reference unavailable, city_final falls back to entity cities")
	} else {
		refs = BuildGeoReference(samples)
		results = append(results, sink.WriteTable(ctx, s.writer, s.silverBucket, refs))
	}

	// 2. 各实体独立清洗
	results = append(results, process(ctx, s, EnrichOrders))
	results = append(results, process(ctx, s, EnrichProducts))
	results = append(results, process(ctx, s, func(raws []model.RawCustomer) []model.SilverCustomer {
		return EnrichCustomers(raws, refs)
	}))
	results = append(results, process(ctx, s, func(raws []model.RawSeller) []model.SilverSeller {
		return EnrichSellers(raws, refs)
	}))
	results = append(results, process(ctx, s, EnrichOrderItems))
	results = append(results, process(ctx, s, EnrichPayments))
	results = append(results, process(ctx, s, EnrichReviews))

	return results, nil
}

// readBronze 读取一张 bronze 输入表
func readBronze[T sink.Table](ctx context.Context, s *Stage) ([]T, error) {
	var m T
	data, err := s.store.GetTable(ctx, s.bronzeBucket, m.TableName())
	if err != nil {
		return nil, err
	}
	return parquetx.Unmarshal[T](data)
}

// process 读取-清洗-落地一个实体
func process[R sink.Table, S sink.Table](ctx context.Context, s *Stage, enrich func([]R) []S) stage.TableResult {
	rows, err := readBronze[R](ctx, s)
	if err != nil {
		var out S
		return stage.Fail(out.TableName(), errorutil.RecoverableWrap("failed to read bronze input", err))
	}
	return sink.WriteTable(ctx, s.writer, s.silverBucket, enrich(rows))
}
