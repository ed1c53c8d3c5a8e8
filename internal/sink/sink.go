package sink

import (
	"context"

	"odp/dpbatch/internal/stage"
	"odp/dpbatch/pkg/errorutil"
	"odp/dpbatch/pkg/infra/minio"
	"odp/dpbatch/pkg/infra/postgres"
	"odp/dpbatch/pkg/logger"
	"odp/dpbatch/pkg/parquetx"
)

// Table 可落地的表：表名同时作为归档对象键和数仓表名
type Table interface {
	TableName() string
}

// Writer 双汇写入器
// 归档层无条件整表覆盖写；数仓按已存在与否选择 truncate+append 或建表，
// 保证数仓侧已声明的约束跨运行存活。warehouse 为 nil 时仅写归档层。
type Writer struct {
	store     *minio.Store
	warehouse *postgres.WarehouseDAO
	logger    logger.Logger
}

// NewWriter 创建 Writer 实例
func NewWriter(store *minio.Store, warehouse *postgres.WarehouseDAO, log logger.Logger) *Writer {
	return &Writer{
		store:     store,
		warehouse: warehouse,
		logger:    log,
	}
}

// WriteTable 将一张表写入归档层与数仓（若配置）
// 任一汇失败即整表视为失败；写入按表为单位原子（归档为整对象替换，
// 数仓为单事务装载），不存在半写的表
func WriteTable[T Table](ctx context.Context, w *Writer, bucket string, rows []T) stage.TableResult {
	var m T
	table := m.TableName()
	ctx = logger.WithTable(ctx, table)

	// 1. 编码
	data, err := parquetx.Marshal(rows)
	if err != nil {
		return stage.Fail(table, errorutil.RecoverableWrap("failed to encode table", err))
	}

	// 2. 归档层
	if err := w.store.PutTable(ctx, bucket, table, data); err != nil {
		return stage.Fail(table, errorutil.RecoverableWrap("failed to write archive", err))
	}
	w.logger.Debugf(ctx, "archived %s/%s, rows=%d, bytes=%d", bucket, table, len(rows), len(data))

	// 3. 数仓
	if w.warehouse != nil {
		if err := w.warehouse.SaveTable(ctx, &m, table, rows, len(rows)); err != nil {
			return stage.Fail(table, errorutil.RecoverableWrap("failed to load warehouse", err))
		}
	}

	return stage.OK(table, len(rows))
}
