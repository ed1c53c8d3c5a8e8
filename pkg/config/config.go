package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 全局配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Minio    MinioConfig    `mapstructure:"minio"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lmstfy   LmstfyConfig   `mapstructure:"lmstfy"`
	Model    ModelConfig    `mapstructure:"model"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// MySQLConfig 业务源库配置（bronze 阶段读取）
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// MinioConfig 对象存储配置（归档层）
type MinioConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	UseSSL           bool   `mapstructure:"use_ssl"`
	BronzeBucket     string `mapstructure:"bronze_bucket"`
	SilverBucket     string `mapstructure:"silver_bucket"`
	GoldBucket       string `mapstructure:"gold_bucket"`
	PredictionBucket string `mapstructure:"prediction_bucket"`
}

// PostgresConfig 数仓配置（gold / predict 阶段写入）
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig Redis 配置（阶段完成通知，addr 为空则禁用）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// LmstfyConfig Lmstfy 配置（预测结果回调，host 为空则禁用）
type LmstfyConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Namespace     string `mapstructure:"namespace"`
	Token         string `mapstructure:"token"`
	CallbackQueue string `mapstructure:"callback_queue"`
}

// ModelConfig 模型工件配置（predict 阶段）
type ModelConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置
// 各阶段自身的专属依赖（如模型工件目录）在阶段构造时校验
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Minio.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if c.Minio.BronzeBucket == "" || c.Minio.SilverBucket == "" || c.Minio.GoldBucket == "" {
		return fmt.Errorf("minio bronze/silver/gold buckets are required")
	}
	if c.Lmstfy.Host != "" && c.Lmstfy.CallbackQueue == "" {
		return fmt.Errorf("lmstfy.callback_queue is required when lmstfy.host is set")
	}
	return nil
}
