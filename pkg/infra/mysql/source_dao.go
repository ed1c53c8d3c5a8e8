package mysql

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// SourceDAO 业务源库数据访问对象（bronze 阶段全量读取）
type SourceDAO struct {
	db *gorm.DB
}

// NewSourceDAO 创建 SourceDAO 实例
func NewSourceDAO(dsn string) (*SourceDAO, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SourceDAO{
		db: db,
	}, nil
}

// ReadTable 全量读取一张源表为通用记录集
// 列类型不做预设，由调用方按需强制转换
func (dao *SourceDAO) ReadTable(ctx context.Context, table string) ([]map[string]interface{}, error) {
	var records []map[string]interface{}
	result := dao.db.WithContext(ctx).Table(table).Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, result.Error)
	}
	return records, nil
}

// Close 关闭数据库连接
func (dao *SourceDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
