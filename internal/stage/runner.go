package stage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"odp/dpbatch/pkg/infra/redis"
	"odp/dpbatch/pkg/logger"
)

// Runner 阶段执行器
// 负责计时、逐表结果日志、完成通知与退出语义：任一表失败或阶段级
// 致命错误都使本次执行返回非 nil（进程以非零码退出，交由编排器重试）
type Runner struct {
	stage   Stage
	pubsub  *redis.PubSub
	channel string
	running *atomic.Bool
	logger  logger.Logger
}

// NewRunner 创建 Runner 实例
// pubsub 为 nil 时不发布完成通知
func NewRunner(s Stage, pubsub *redis.PubSub, channel string, log logger.Logger) *Runner {
	return &Runner{
		stage:   s,
		pubsub:  pubsub,
		channel: channel,
		running: atomic.NewBool(false),
		logger:  log,
	}
}

// Execute 执行阶段
func (r *Runner) Execute(ctx context.Context) error {
	// 单飞保护
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("stage %s is already running", r.stage.Name())
	}
	defer r.running.Store(false)

	ctx = logger.WithStage(ctx, r.stage.Name())
	r.logger.Infof(ctx, "stage %s started", r.stage.Name())

	start := time.Now()
	results, err := r.stage.Run(ctx)
	duration := time.Since(start)

	// 1. 逐表结果日志
	for _, res := range results {
		tctx := logger.WithTable(ctx, res.Table)
		if res.Succeeded() {
			r.logger.Infof(tctx, "table %s written, rows=%d", res.Table, res.Rows)
		} else {
			r.logger.Errorf(tctx, "table %s skipped: %v", res.Table, res.Err)
		}
	}

	failed := CountFailed(results)

	// 2. 完成通知（尽力而为，通知失败不影响阶段结果）
	r.notify(ctx, err == nil && failed == 0, len(results), failed, duration)

	// 3. 退出语义
	if err != nil {
		r.logger.Errorf(ctx, "stage %s aborted after %s: %v", r.stage.Name(), duration, err)
		return fmt.Errorf("stage %s aborted: %w", r.stage.Name(), err)
	}
	if failed > 0 {
		r.logger.Errorf(ctx, "stage %s finished in %s with %d of %d tables failed",
			r.stage.Name(), duration, failed, len(results))
		return fmt.Errorf("stage %s: %d of %d tables failed", r.stage.Name(), failed, len(results))
	}

	r.logger.Infof(ctx, "stage %s finished in %s, tables=%d", r.stage.Name(), duration, len(results))
	return nil
}

// notify 发布阶段完成通知
func (r *Runner) notify(ctx context.Context, succeeded bool, tables, failed int, duration time.Duration) {
	if r.pubsub == nil || r.channel == "" {
		return
	}

	status := redis.StageStatusSucceeded
	if !succeeded {
		status = redis.StageStatusFailed
	}

	notification := &redis.StageNotification{
		Stage:        r.stage.Name(),
		Status:       status,
		Tables:       tables,
		FailedTables: failed,
		DurationMs:   duration.Milliseconds(),
		Timestamp:    time.Now().Unix(),
	}

	if err := r.pubsub.PublishStageComplete(ctx, r.channel, notification); err != nil {
		r.logger.Warnf(ctx, "failed to publish stage notification: %v", err)
	}
}
