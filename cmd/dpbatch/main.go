package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"odp/dpbatch/internal/sink"
	"odp/dpbatch/internal/stage"
	"odp/dpbatch/internal/stage/bronze"
	"odp/dpbatch/internal/stage/gold"
	"odp/dpbatch/internal/stage/predict"
	"odp/dpbatch/internal/stage/silver"
	"odp/dpbatch/pkg/config"
	"odp/dpbatch/pkg/infra/minio"
	"odp/dpbatch/pkg/infra/mysql"
	"odp/dpbatch/pkg/infra/postgres"
	"odp/dpbatch/pkg/infra/redis"
	"odp/dpbatch/pkg/lmstfy"
	"odp/dpbatch/pkg/logger"
)

var (
	configPath = flag.String("config", "./config/dpbatch.yaml", "配置文件路径")
	stageName  = flag.String("stage", "", "要执行的阶段（bronze/silver/gold/predict）")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	log.Println("========================================")
	log.Printf("  DPBATCH Stage %q Starting...\n", *stageName)
	log.Println("========================================")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}
	log.Printf("Config loaded: %s, env: %s, log_level: %s\n", cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)

	// 2. 初始化 Logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 组装所选阶段
	s, cleanup, err := buildStage(cfg, *stageName, zapLogger)
	if err != nil {
		log.Fatalf("Failed to build stage: %v", err)
	}
	defer cleanup()

	// 4. 完成通知（可选）
	var pubsub *redis.PubSub
	if cfg.Redis.Addr != "" {
		pubsub, err = redis.NewPubSub(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer pubsub.Close()
	}

	// 5. 信号取消的执行上下文
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal: %v, cancelling...\n", sig)
		cancel()
	}()

	// 6. 执行并以退出码上报编排器
	runner := stage.NewRunner(s, pubsub, cfg.Redis.Channel, zapLogger)
	if err := runner.Execute(ctx); err != nil {
		log.Printf("Stage failed: %v\n", err)
		os.Exit(1)
	}

	log.Println("========================================")
	log.Println("  Stage finished successfully")
	log.Println("========================================")
}

// buildStage 按阶段名组装阶段及其依赖
// cleanup 关闭该阶段独占的连接（对象存储客户端无需关闭）
func buildStage(cfg *config.Config, name string, zapLogger logger.Logger) (stage.Stage, func(), error) {
	store, err := minio.NewStore(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		return nil, nil, err
	}

	noop := func() {}

	switch name {
	case stage.NameBronze:
		if err := store.EnsureBucket(cfg.Minio.BronzeBucket); err != nil {
			return nil, nil, err
		}
		source, err := mysql.NewSourceDAO(cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		writer := sink.NewWriter(store, nil, zapLogger)
		s := bronze.NewStage(source, writer, cfg.Minio.BronzeBucket, zapLogger)
		return s, func() { source.Close() }, nil

	case stage.NameSilver:
		if err := store.EnsureBucket(cfg.Minio.SilverBucket); err != nil {
			return nil, nil, err
		}
		writer := sink.NewWriter(store, nil, zapLogger)
		s := silver.NewStage(store, writer, cfg.Minio.BronzeBucket, cfg.Minio.SilverBucket, zapLogger)
		return s, noop, nil

	case stage.NameGold:
		if err := store.EnsureBucket(cfg.Minio.GoldBucket); err != nil {
			return nil, nil, err
		}
		warehouse, err := postgres.NewWarehouseDAO(cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		writer := sink.NewWriter(store, warehouse, zapLogger)
		s := gold.NewStage(store, writer, cfg.Minio.SilverBucket, cfg.Minio.GoldBucket, zapLogger)
		return s, func() { warehouse.Close() }, nil

	case stage.NamePredict:
		if err := store.EnsureBucket(cfg.Minio.PredictionBucket); err != nil {
			return nil, nil, err
		}
		warehouse, err := postgres.NewWarehouseDAO(cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		writer := sink.NewWriter(store, warehouse, zapLogger)

		var callback *lmstfy.Client
		if cfg.Lmstfy.Host != "" {
			callback, err = lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
			if err != nil {
				return nil, nil, err
			}
		}

		s := predict.NewStage(store, writer, cfg.Minio.SilverBucket, cfg.Minio.PredictionBucket,
			cfg.Model.Dir, callback, cfg.Lmstfy.CallbackQueue, zapLogger)
		return s, func() { warehouse.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown stage %q, expect one of bronze/silver/gold/predict", name)
}
