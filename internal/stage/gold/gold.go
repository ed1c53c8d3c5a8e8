package gold

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

// Stage gold 阶段：星型模型装载（日历 + 三维度 + 三事实）
// 每张输出表独立落地，单表失败不中止其余表；某个 silver 输入读取失败
// 只连带失败依赖它的输出
type Stage struct {
	store        *minio.Store
	writer       *sink.Writer
	silverBucket string
	goldBucket   string
	logger       logger.Logger
}

// NewStage 创建 gold 阶段实例
func NewStage(store *minio.Store, writer *sink.Writer, silverBucket, goldBucket string, log logger.Logger) *Stage {
	return &Stage{
		store:        store,
		writer:       writer,
		silverBucket: silverBucket,
		goldBucket:   goldBucket,
		logger:       log,
	}
}

// Name 阶段名
func (s *Stage) Name() string {
	return stage.NameGold
}

// Run 执行 gold 装载
func (s *Stage) Run(ctx context.Context) ([]stage.TableResult, error) {
	results := make([]stage.TableResult, 0, 7)

	// 1. 日历维度：无外部输入，确定性生成
	results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildCalendar()))

	// 2. 各维度独立构建
	customers, err := readSilver[model.SilverCustomer](ctx, s)
	if err != nil {
		results = append(results, failInput(model.DimCustomer{}.TableName(), err))
	} else {
		results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildDimCustomers(customers)))
	}

	products, err := readSilver[model.SilverProduct](ctx, s)
	if err != nil {
		results = append(results, failInput(model.DimProduct{}.TableName(), err))
	} else {
		results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildDimProducts(products)))
	}

	sellers, err := readSilver[model.SilverSeller](ctx, s)
	if err != nil {
		results = append(results, failInput(model.DimSeller{}.TableName(), err))
	} else {
		results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildDimSellers(sellers)))
	}

	// 3. 销售事实需要明细与订单两张输入
	items, itemsErr := readSilver[model.SilverOrderItem](ctx, s)
	orders, ordersErr := readSilver[model.SilverOrder](ctx, s)
	switch {
	case itemsErr != nil:
		results = append(results, failInput(model.FactSale{}.TableName(), itemsErr))
	case ordersErr != nil:
		results = append(results, failInput(model.FactSale{}.TableName(), ordersErr))
	default:
		results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildFactSales(items, orders)))
	}

	// 4. 支付与评价事实
	payments, err := readSilver[model.SilverPayment](ctx, s)
	if err != nil {
		results = append(results, failInput(model.FactPayment{}.TableName(), err))
	} else {
		results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildFactPayments(payments)))
	}

	reviews, err := readSilver[model.SilverReview](ctx, s)
	if err != nil {
		results = append(results, failInput(model.FactReview{}.TableName(), err))
	} else {
		results = append(results, sink.WriteTable(ctx, s.writer, s.goldBucket, BuildFactReviews(reviews)))
	}

	return results, nil
}

// readSilver 读取一张 silver 输入表
func readSilver[T sink.Table](ctx context.Context, s *Stage) ([]T, error) {
	var m T
	data, err := s.store.GetTable(ctx, s.silverBucket, m.TableName())
	if err != nil {
		return nil, err
	}
	return parquetx.Unmarshal[T](data)
}

// failInput 输入读取失败时标记依赖它的输出表失败
func failInput(table string, err error) stage.TableResult {
	return stage.Fail(table, errorutil.RecoverableWrap("failed to read silver input", err))
}
