package predict

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"odp/dpbatch/internal/model"
	"odp/dpbatch/internal/sink"
	"odp/dpbatch/internal/stage"
	"odp/dpbatch/pkg/errorutil"
	"odp/dpbatch/pkg/infra/minio"
	"odp/dpbatch/pkg/lmstfy"
	"odp/dpbatch/pkg/logger"
	"odp/dpbatch/pkg/parquetx"
)

// 在途订单状态集合
var inFlightStatuses = map[string]struct{}{
	"shipped":    {},
	"processing": {},
	"invoiced":   {},
}

// 回调任务的保留与投递参数
const (
	callbackTTL   = 24 * 60 * 60
	callbackDelay = 0
)

// Stage predict 阶段：在途订单的延误风险评分
// 模型工件缺失为阶段级致命错误；在途订单为空是正常的提前退出
type Stage struct {
	store            *minio.Store
	writer           *sink.Writer
	silverBucket     string
	predictionBucket string
	modelDir         string
	callback         *lmstfy.Client
	callbackQueue    string
	logger           logger.Logger
}

// NewStage 创建 predict 阶段实例
// callback 为 nil 时不发布评分完成回调
func NewStage(store *minio.Store, writer *sink.Writer, silverBucket, predictionBucket, modelDir string,
	callback *lmstfy.Client, callbackQueue string, log logger.Logger) *Stage {
	return &Stage{
		store:            store,
		writer:           writer,
		silverBucket:     silverBucket,
		predictionBucket: predictionBucket,
		modelDir:         modelDir,
		callback:         callback,
		callbackQueue:    callbackQueue,
		logger:           log,
	}
}

// Name 阶段名
func (s *Stage) Name() string {
	return stage.NamePredict
}

// Run 执行延误风险评分
func (s *Stage) Run(ctx context.Context) ([]stage.TableResult, error) {
	table := model.PredictionResult{}.TableName()

	// 1. 模型工件
	artifacts, err := LoadArtifacts(s.modelDir)
	if err != nil {
		return nil, err
	}

	// 2. 全量订单（参考"现在"取全集最大购买时间，与在途过滤无关）
	orders, err := readSilver[model.SilverOrder](ctx, s)
	if err != nil {
		return []stage.TableResult{stage.Fail(table,
			errorutil.RecoverableWrap("failed to read silver orders", err))}, nil
	}

	inFlight := make([]model.SilverOrder, 0)
	for _, o := range orders {
		if _, ok := inFlightStatuses[o.OrderStatus]; ok {
			inFlight = append(inFlight, o)
		}
	}
	if len(inFlight) == 0 {
		s.logger.Infof(ctx, "no in-flight orders, nothing to score")
		return []stage.TableResult{stage.OK(table, 0)}, nil
	}

	now := referenceNow(orders)

	// 3. 评分所需的其余 silver 输入
	items, err := readSilver[model.SilverOrderItem](ctx, s)
	if err != nil {
		return []stage.TableResult{stage.Fail(table,
			errorutil.RecoverableWrap("failed to read silver order items", err))}, nil
	}
	products, err := readSilver[model.SilverProduct](ctx, s)
	if err != nil {
		return []stage.TableResult{stage.Fail(table,
			errorutil.RecoverableWrap("failed to read silver products", err))}, nil
	}
	customers, err := readSilver[model.SilverCustomer](ctx, s)
	if err != nil {
		return []stage.TableResult{stage.Fail(table,
			errorutil.RecoverableWrap("failed to read silver customers", err))}, nil
	}
	sellers, err := readSilver[model.SilverSeller](ctx, s)
	if err != nil {
		return []stage.TableResult{stage.Fail(table,
			errorutil.RecoverableWrap("failed to read silver sellers", err))}, nil
	}

	// 4. 逐明细评分并按订单聚合
	results := Score(inFlight, items, products, customers, sellers, artifacts, now)
	s.logger.Infof(ctx, "scored %d in-flight orders, threshold=%.2f",
		len(results), artifacts.Config.BestThreshold)

	res := sink.WriteTable(ctx, s.writer, s.predictionBucket, results)

	// 5. 评分完成回调（尽力而为）
	if res.Succeeded() {
		s.publishCallback(ctx, len(results))
	}

	return []stage.TableResult{res}, nil
}

// Score 对在途订单集合评分（每个订单一行，取其明细概率最大值）
func Score(inFlight []model.SilverOrder, items []model.SilverOrderItem,
	products []model.SilverProduct, customers []model.SilverCustomer,
	sellers []model.SilverSeller, artifacts *Artifacts, now time.Time) []model.PredictionResult {

	orderIdx := make(map[string]model.SilverOrder, len(inFlight))
	for _, o := range inFlight {
		orderIdx[o.OrderID] = o
	}
	productIdx := make(map[string]model.SilverProduct, len(products))
	for _, p := range products {
		productIdx[p.ProductID] = p
	}
	customerIdx := make(map[string]model.SilverCustomer, len(customers))
	for _, c := range customers {
		customerIdx[c.CustomerID] = c
	}
	sellerIdx := make(map[string]model.SilverSeller, len(sellers))
	for _, sl := range sellers {
		sellerIdx[sl.SellerID] = sl
	}

	// 内连接语义：任一侧缺行的明细静默排除（宁缺毋滥）
	maxProb := make(map[string]float64)
	for _, it := range items {
		order, ok := orderIdx[it.OrderID]
		if !ok {
			continue
		}
		product, ok := productIdx[it.ProductID]
		if !ok {
			continue
		}
		customer, ok := customerIdx[order.CustomerID]
		if !ok {
			continue
		}
		seller, ok := sellerIdx[it.SellerID]
		if !ok {
			continue
		}

		features := buildFeatures(order, it, product, customer, seller, artifacts, now)
		p := artifacts.Model.PredictProba(features)
		if prev, ok := maxProb[it.OrderID]; !ok || p > prev {
			maxProb[it.OrderID] = p
		}
	}

	orderIDs := make([]string, 0, len(maxProb))
	for id := range maxProb {
		orderIDs = append(orderIDs, id)
	}
	sort.Strings(orderIDs)

	out := make([]model.PredictionResult, 0, len(orderIDs))
	for _, id := range orderIDs {
		p := maxProb[id]

		var alert int32
		if p >= artifacts.Config.BestThreshold {
			alert = 1
		}

		out = append(out, model.PredictionResult{
			OrderID:             id,
			ProbabilidadeAtraso: p,
			AlertaAtraso:        alert,
		})
	}

	return out
}

// buildFeatures 组装单条明细的特征向量
// 仅保留 model_config 声明的特征，无法计算的特征填 0
func buildFeatures(order model.SilverOrder, item model.SilverOrderItem,
	product model.SilverProduct, customer model.SilverCustomer,
	seller model.SilverSeller, artifacts *Artifacts, now time.Time) map[string]float64 {

	values := make(map[string]float64, len(artifacts.Config.Features))

	if customer.GeolocationLat != nil && customer.GeolocationLng != nil &&
		seller.GeolocationLat != nil && seller.GeolocationLng != nil {
		values[featDistanceKm] = Haversine(*customer.GeolocationLat, *customer.GeolocationLng,
			*seller.GeolocationLat, *seller.GeolocationLng)
	}

	approved := model.ParseTime(order.OrderApprovedAt)
	carrier := model.ParseTime(order.OrderDeliveredCarrierDate)
	values[featHandlingHours] = HandlingHours(approved, carrier, now)

	if purchase := model.ParseTime(order.OrderPurchaseTimestamp); purchase != nil {
		values[featPurchaseDay] = PurchaseWeekday(*purchase)
	}

	values[featDensity] = Density(product.ProductWeightG, product.VolumeCm3)
	values[featRouteRisk] = LookupRisk(artifacts.RouteRisk, RouteKey(seller.SellerState, customer.CustomerState))
	values[featCategoryRisk] = LookupRisk(artifacts.CategoryRisk, product.ProductCategoryName)

	features := make(map[string]float64, len(artifacts.Config.Features))
	for _, name := range artifacts.Config.Features {
		features[name] = values[name]
	}
	return features
}

// referenceNow 可复现的参考"现在"：全量订单最大购买时间 + 一天
func referenceNow(orders []model.SilverOrder) time.Time {
	var max time.Time
	for _, o := range orders {
		if t := model.ParseTime(o.OrderPurchaseTimestamp); t != nil && t.After(max) {
			max = *t
		}
	}
	return max.Add(24 * time.Hour)
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

// scoringCallback 评分完成回调消息
type scoringCallback struct {
	Stage     string `json:"stage"`
	Table     string `json:"table"`
	Orders    int    `json:"orders"`
	Timestamp int64  `json:"timestamp"`
}

// publishCallback 发布评分完成回调任务
func (s *Stage) publishCallback(ctx context.Context, orders int) {
	if s.callback == nil || s.callbackQueue == "" {
		return
	}

	payload, err := json.Marshal(&scoringCallback{
		Stage:     stage.NamePredict,
		Table:     model.PredictionResult{}.TableName(),
		Orders:    orders,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		s.logger.Warnf(ctx, "failed to marshal scoring callback: %v", err)
		return
	}

	if err := s.callback.Publish(s.callbackQueue, payload, callbackTTL, callbackDelay); err != nil {
		s.logger.Warnf(ctx, "failed to publish scoring callback: %v", err)
		return
	}
	s.logger.Infof(ctx, "scoring callback published to queue %s", s.callbackQueue)
}
