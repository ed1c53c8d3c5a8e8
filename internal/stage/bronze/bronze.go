package bronze

import (
	"context"
	"time"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/internal/sink"
	"odp/dpbatch/internal/stage"
	"odp/dpbatch/pkg/errorutil"
	"odp/dpbatch/pkg/infra/mysql"
	"odp/dpbatch/pkg/logger"
)

// Stage bronze 阶段：源库全量摄取落地为归档 parquet
// 逐表独立摄取，单表失败记录结果后继续其余表
type Stage struct {
	source       *mysql.SourceDAO
	writer       *sink.Writer
	bronzeBucket string
	logger       logger.Logger
}

// NewStage 创建 bronze 阶段实例
func NewStage(source *mysql.SourceDAO, writer *sink.Writer, bronzeBucket string, log logger.Logger) *Stage {
	return &Stage{
		source:       source,
		writer:       writer,
		bronzeBucket: bronzeBucket,
		logger:       log,
	}
}

// Name 阶段名
func (s *Stage) Name() string {
	return stage.NameBronze
}

// Run 执行源库摄取
func (s *Stage) Run(ctx context.Context) ([]stage.TableResult, error) {
	// 同一次运行的所有表共用同一个摄取日期
	ingestionDate := time.Now().Format("2006-01-02")

	results := make([]stage.TableResult, 0, 8)
	results = append(results, ingest(ctx, s, func(rec record) model.RawOrder {
		return convertOrder(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawOrderItem {
		return convertOrderItem(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawPayment {
		return convertPayment(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawProduct {
		return convertProduct(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawCustomer {
		return convertCustomer(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawSeller {
		return convertSeller(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawReview {
		return convertReview(rec, ingestionDate)
	}))
	results = append(results, ingest(ctx, s, func(rec record) model.RawGeolocation {
		return convertGeolocation(rec, ingestionDate)
	}))

	return results, nil
}

// ingest 读取-转换-归档一张源表
func ingest[T sink.Table](ctx context.Context, s *Stage, convert func(record) T) stage.TableResult {
	var m T
	table := m.TableName()

	records, err := s.source.ReadTable(ctx, table)
	if err != nil {
		return stage.Fail(table, errorutil.RecoverableWrap("failed to read source table", err))
	}

	rows := make([]T, 0, len(records))
	for _, rec := range records {
		rows = append(rows, convert(rec))
	}

	return sink.WriteTable(ctx, s.writer, s.bronzeBucket, rows)
}
