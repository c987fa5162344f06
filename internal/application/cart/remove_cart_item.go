package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// RemoveCartItemUseCase 删除购物车条目用例
type RemoveCartItemUseCase struct {
	cartService cart.Service
}

// NewRemoveCartItemUseCase 创建删除条目用例
func NewRemoveCartItemUseCase(cartService cart.Service) *RemoveCartItemUseCase {
	return &RemoveCartItemUseCase{cartService: cartService}
}

// Execute 执行删除条目
func (uc *RemoveCartItemUseCase) Execute(ctx context.Context, userID, itemID uint) error {
	return uc.cartService.RemoveItem(ctx, userID, itemID)
}
