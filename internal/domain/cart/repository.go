package cart

import (
	"context"
)

// Repository 购物车仓储接口(依赖倒置原则)
// 所有写方法都通过context参与外层事务(见mysql.TxManager)
type Repository interface {
	// Create 创建购物车
	Create(ctx context.Context, cart *Cart) error

	// FindByUserID 查询用户的购物车(含条目)
	// 不存在返回ErrCartNotFound,由领域服务决定是否创建
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// AddItem 插入一条购物车条目
	AddItem(ctx context.Context, item *CartItem) error

	// UpdateItemQuantity 更新条目数量
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error

	// RemoveItem 删除一条条目
	RemoveItem(ctx context.Context, itemID uint) error

	// RemoveItemsByBookID 删除所有引用某图书的条目
	// 图书删除时的级联清理,与图书软删除在同一事务中执行
	RemoveItemsByBookID(ctx context.Context, bookID uint) error

	// ClearItems 清空购物车的全部条目
	// 下单成功后调用,与订单插入在同一事务中执行
	ClearItems(ctx context.Context, cartID uint) error
}
