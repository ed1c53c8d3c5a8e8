package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// WarehouseDAO 数仓数据访问对象
// 装载策略：表已存在时 TRUNCATE ... CASCADE 后追加，保留表上已声明的
// 主键/外键/索引；表不存在时按模型建表后追加。整个装载在单事务内执行，
// 下游不会读到半写状态。
type WarehouseDAO struct {
	db *gorm.DB
}

// NewWarehouseDAO 创建 WarehouseDAO 实例
func NewWarehouseDAO(dsn string) (*WarehouseDAO, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	return &WarehouseDAO{
		db: db,
	}, nil
}

const insertBatchSize = 500

// SaveTable 按装载策略写入一张表
// 参数：
//   - model: 行结构体指针（提供表名与建表模式）
//   - table: 表名
//   - rows:  行切片
//   - count: 行数
func (dao *WarehouseDAO) SaveTable(ctx context.Context, model interface{}, table string, rows interface{}, count int) error {
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(table) {
			// 1. 已存在：清空但保留约束定义
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		} else {
			// 2. 首次运行：按模型建表
			if err := tx.Migrator().CreateTable(model); err != nil {
				return fmt.Errorf("failed to create table %s: %w", table, err)
			}
		}

		// 3. 批量追加
		if count == 0 {
			return nil
		}
		if err := tx.Table(table).CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to append into table %s: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save table %s: %w", table, err)
	}
	return nil
}

// Close 关闭数据库连接
func (dao *WarehouseDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
