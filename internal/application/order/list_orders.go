package order

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// ListOrdersUseCase 订单列表查询用例
// 只返回当前用户自己的订单,按下单时间倒序分页
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 订单列表请求DTO
type ListOrdersRequest struct {
	UserID   uint
	Page     int
	PageSize int
}

// ListOrdersResponse 订单列表响应DTO
type ListOrdersResponse struct {
	List     []OrderSummary `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Execute 执行订单列表查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]OrderSummary, len(orders))
	for i, o := range orders {
		list[i] = toOrderSummary(o)
	}

	return &ListOrdersResponse{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
