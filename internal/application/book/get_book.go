package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/category"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService     book.Service
	categoryService category.Service
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, categoryService category.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService:     bookService,
		categoryService: categoryService,
	}
}

// Execute 执行详情查询
// 已软删除的图书和不存在的图书一样返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toBookDetail(ctx, b, uc.categoryService), nil
}
