package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的键
// 用私有类型做键,外部包无法伪造或覆盖
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法,fn返回error时自动ROLLBACK
// 2. 事务DB通过context传递,各Repository用getDB提取,
//    同一个fn里的所有仓储操作落在同一事务中
// 3. 嵌套事务由GORM的Savepoint机制支持
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// getDB 从context获取事务DB,没有事务时返回默认DB
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
