package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/category"
)

// PublishBookUseCase 图书上架用例
// 设计说明:
// 1. 分类ID的存在性校验走分类缓存(不回表),校验通过才落库
// 2. ISBN格式、价格范围、ISBN唯一性由图书领域服务负责
type PublishBookUseCase struct {
	bookService     book.Service
	categoryService category.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service, categoryService category.Service) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService:     bookService,
		categoryService: categoryService,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Price       int64 // 价格(分)
	CoverURL    string
	Description string
	CategoryIDs []uint
}

// Execute 执行上架用例
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookDetail, error) {
	// 先校验分类引用,全部存在才继续
	if err := uc.categoryService.ValidateIDs(req.CategoryIDs); err != nil {
		return nil, err
	}

	b, err := uc.bookService.PublishBook(
		ctx,
		req.ISBN,
		req.Title,
		req.Author,
		req.Price,
		req.CoverURL,
		req.Description,
		req.CategoryIDs,
	)
	if err != nil {
		return nil, err
	}

	return toBookDetail(ctx, b, uc.categoryService), nil
}
