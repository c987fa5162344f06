package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// GetCartUseCase 查看购物车用例
// 用户第一次查看时惰性创建空购物车
type GetCartUseCase struct {
	cartService cart.Service
	bookRepo    book.Repository
}

// NewGetCartUseCase 创建查看购物车用例
func NewGetCartUseCase(cartService cart.Service, bookRepo book.Repository) *GetCartUseCase {
	return &GetCartUseCase{
		cartService: cartService,
		bookRepo:    bookRepo,
	}
}

// Execute 执行查看购物车
func (uc *GetCartUseCase) Execute(ctx context.Context, userID uint) (*CartView, error) {
	c, err := uc.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartView(ctx, c, uc.bookRepo)
}
