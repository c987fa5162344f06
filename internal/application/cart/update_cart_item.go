package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// UpdateCartItemUseCase 更新购物车条目数量用例
// 数量是覆盖语义;条目属于他人时表现为"不存在"
type UpdateCartItemUseCase struct {
	cartService cart.Service
	bookRepo    book.Repository
}

// NewUpdateCartItemUseCase 创建更新条目用例
func NewUpdateCartItemUseCase(cartService cart.Service, bookRepo book.Repository) *UpdateCartItemUseCase {
	return &UpdateCartItemUseCase{
		cartService: cartService,
		bookRepo:    bookRepo,
	}
}

// UpdateCartItemRequest 更新条目请求DTO
type UpdateCartItemRequest struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// Execute 执行更新条目
func (uc *UpdateCartItemUseCase) Execute(ctx context.Context, req UpdateCartItemRequest) (*CartView, error) {
	c, err := uc.cartService.UpdateItem(ctx, req.UserID, req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	return toCartView(ctx, c, uc.bookRepo)
}
