package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	minio "github.com/minio/minio-go"
)

// Store 对象存储客户端封装（归档层）
// 表的归档键为 {table}/{table}.parquet，整对象覆盖写保证表级原子性
type Store struct {
	client *minio.Client
}

// NewStore 创建 Store 实例
func NewStore(endpoint, accessKey, secretKey string, useSSL bool) (*Store, error) {
	client, err := minio.New(endpoint, accessKey, secretKey, useSSL)
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &Store{
		client: client,
	}, nil
}

// EnsureBucket 确保桶存在，不存在则创建
func (s *Store) EnsureBucket(bucket string) error {
	exists, err := s.client.BucketExists(bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(bucket, ""); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// tableKey 表的对象键
func tableKey(table string) string {
	return fmt.Sprintf("%s/%s.parquet", table, table)
}

// PutTable 整表覆盖写入
func (s *Store) PutTable(ctx context.Context, bucket, table string, data []byte) error {
	_, err := s.client.PutObjectWithContext(ctx, bucket, tableKey(table),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return fmt.Errorf("failed to put table %s/%s: %w", bucket, table, err)
	}
	return nil
}

// GetTable 整表读取
func (s *Store) GetTable(ctx context.Context, bucket, table string) ([]byte, error) {
	obj, err := s.client.GetObjectWithContext(ctx, bucket, tableKey(table), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s/%s: %w", bucket, table, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s/%s: %w", bucket, table, err)
	}
	return data, nil
}
