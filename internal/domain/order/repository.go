package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 写方法通过context参与外层事务(见mysql.TxManager):
// 下单时订单插入和购物车清空必须在同一事务中执行
type Repository interface {
	// Create 创建订单(含全部明细)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 更新订单(主要用于状态更新)
	Update(ctx context.Context, order *Order) error

	// ListByUserID 分页查询用户的订单列表,按下单时间倒序
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
