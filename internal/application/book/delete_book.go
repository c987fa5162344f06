package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// TxManager 事务管理器(消费方定义接口,由mysql.TxManager实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteBookUseCase 图书下架用例
// 设计说明:
// 1. 删除是软删除(status翻转),历史订单继续引用该图书
// 2. 所有购物车里引用该图书的条目级联硬删除
// 3. 级联清理和软删除在同一事务中执行,不会出现
//    "条目清了书还在"或"书没了条目还挂着"的中间状态
type DeleteBookUseCase struct {
	bookRepo  book.Repository
	cartRepo  cart.Repository
	txManager TxManager
}

// NewDeleteBookUseCase 创建下架用例
func NewDeleteBookUseCase(bookRepo book.Repository, cartRepo cart.Repository, txManager TxManager) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo:  bookRepo,
		cartRepo:  cartRepo,
		txManager: txManager,
	}
}

// Execute 执行下架用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 先确认图书存在(已删除的视同不存在,幂等删除在这里被拦截)
		if _, err := uc.bookRepo.FindByID(txCtx, id); err != nil {
			return err
		}

		// 步骤1:清理所有购物车中引用该图书的条目
		if err := uc.cartRepo.RemoveItemsByBookID(txCtx, id); err != nil {
			return err
		}

		// 步骤2:软删除图书
		return uc.bookRepo.Delete(txCtx, id)
	})
}
