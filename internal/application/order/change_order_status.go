package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// ChangeOrderStatusUseCase 订单状态更新用例
// 状态名解析大小写不敏感;不限制流转路径,只拒绝未知状态
type ChangeOrderStatusUseCase struct {
	orderRepo order.Repository
}

// NewChangeOrderStatusUseCase 创建状态更新用例
func NewChangeOrderStatusUseCase(orderRepo order.Repository) *ChangeOrderStatusUseCase {
	return &ChangeOrderStatusUseCase{orderRepo: orderRepo}
}

// ChangeOrderStatusRequest 状态更新请求DTO
type ChangeOrderStatusRequest struct {
	UserID  uint
	OrderID uint
	Status  string // 状态名,如"PAID"、"paid"
}

// Execute 执行状态更新
func (uc *ChangeOrderStatusUseCase) Execute(ctx context.Context, req ChangeOrderStatusRequest) (*OrderDetail, error) {
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(req.UserID) {
		return nil, order.ErrOrderNotFound
	}

	if err := o.ChangeStatus(target); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return toOrderDetail(o), nil
}
