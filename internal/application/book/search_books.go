package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
)

// SearchBooksUseCase 组合条件搜索用例
// 搜索条件全部可选,可自由组合:
// - title/author: 大小写不敏感的子串匹配
// - isbn: 子串匹配(大小写敏感,ISBN本身只有数字和连字符)
// - price_range: [最低价]或[最低价,最高价],单位元
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Title      string
	Author     string
	ISBN       string
	PriceRange []string // 价格区间(元),0-2个元素
	Page       int
	PageSize   int
}

// Execute 执行搜索用例
// 无任何条件时等价于全量列表(只做分页)
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*ListBooksResponse, error) {
	normalizePaging(&req.Page, &req.PageSize)

	criteria := book.SearchCriteria{
		Title:      req.Title,
		Author:     req.Author,
		ISBN:       req.ISBN,
		PriceRange: req.PriceRange,
	}

	books, total, err := uc.bookService.SearchBooks(ctx, criteria, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:       toBookListItems(books),
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages(total, req.PageSize),
	}, nil
}
