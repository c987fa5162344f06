package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/pkg/metrics"
)

// AddCartItemUseCase 加购用例
// 同一本书重复加购走合并(数量累加),由领域服务保证
type AddCartItemUseCase struct {
	cartService cart.Service
	bookRepo    book.Repository
}

// NewAddCartItemUseCase 创建加购用例
func NewAddCartItemUseCase(cartService cart.Service, bookRepo book.Repository) *AddCartItemUseCase {
	return &AddCartItemUseCase{
		cartService: cartService,
		bookRepo:    bookRepo,
	}
}

// AddCartItemRequest 加购请求DTO
type AddCartItemRequest struct {
	UserID   uint
	BookID   uint
	Quantity int
}

// Execute 执行加购
func (uc *AddCartItemUseCase) Execute(ctx context.Context, req AddCartItemRequest) (*CartView, error) {
	c, err := uc.cartService.AddItem(ctx, req.UserID, req.BookID, req.Quantity)
	if err != nil {
		return nil, err
	}

	metrics.CartItemsAddedTotal.Inc()

	return toCartView(ctx, c, uc.bookRepo)
}
