package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// GetOrderUseCase 订单详情查询用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行订单详情查询
// 订单属于他人时返回ErrOrderNotFound,不泄露订单是否存在
func (uc *GetOrderUseCase) Execute(ctx context.Context, userID, orderID uint) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderNotFound
	}

	return toOrderDetail(o), nil
}
