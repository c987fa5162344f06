package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/category"
)

// UpdateBookUseCase 图书更新用例
// 部分更新语义:
// - 字符串字段传空表示不修改
// - Price<=0表示不修改价格
// - CategoryIDs为nil表示不修改分类,空切片表示清空分类
type UpdateBookUseCase struct {
	bookService     book.Service
	categoryService category.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, categoryService category.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService:     bookService,
		categoryService: categoryService,
	}
}

// UpdateBookRequest 更新请求DTO
type UpdateBookRequest struct {
	ID          uint
	Title       string
	Author      string
	CoverURL    string
	Description string
	Price       int64
	CategoryIDs []uint
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDetail, error) {
	if req.CategoryIDs != nil {
		if err := uc.categoryService.ValidateIDs(req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	b, err := uc.bookService.UpdateBook(
		ctx,
		req.ID,
		req.Title,
		req.Author,
		req.CoverURL,
		req.Description,
		req.Price,
		req.CategoryIDs,
	)
	if err != nil {
		return nil, err
	}

	return toBookDetail(ctx, b, uc.categoryService), nil
}
