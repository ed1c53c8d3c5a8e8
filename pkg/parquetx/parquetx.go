package parquetx

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// Marshal 将行切片编码为 parquet 字节（snappy 压缩）
// 行结构体需携带 parquet 标签
func Marshal[T any](rows []T) ([]byte, error) {
	fw := buffer.NewBufferFile()

	pw, err := writer.NewParquetWriter(fw, new(T), 2)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range rows {
		if err := pw.Write(rows[i]); err != nil {
			return nil, fmt.Errorf("failed to write parquet row %d: %w", i, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close parquet buffer: %w", err)
	}

	return fw.Bytes(), nil
}

// Unmarshal 将 parquet 字节解码为行切片
func Unmarshal[T any](data []byte) ([]T, error) {
	fr := buffer.NewBufferFileFromBytes(data)

	pr, err := reader.NewParquetReader(fr, new(T), 2)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer fr.Close()
	defer pr.ReadStop()

	num := int(pr.GetNumRows())
	rows := make([]T, num)
	if num > 0 {
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return rows, nil
}
