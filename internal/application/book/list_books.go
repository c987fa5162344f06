package book

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/category"
)

// ListBooksUseCase 图书列表查询用例
// 支持分页和排序;按分类浏览时走book_categories关联表,
// 分类ID先走缓存校验,不存在就直接返回,省掉一次分页查询
type ListBooksUseCase struct {
	bookService     book.Service
	bookRepo        book.Repository
	categoryService category.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, bookRepo book.Repository, categoryService category.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService:     bookService,
		bookRepo:        bookRepo,
		categoryService: categoryService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page       int
	PageSize   int
	SortBy     string // 排序方式(price_asc, price_desc, created_at_desc)
	CategoryID uint   // 非0时按分类过滤
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []BookListItem `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	normalizePaging(&req.Page, &req.PageSize)

	var (
		books []*book.Book
		total int64
		err   error
	)
	if req.CategoryID > 0 {
		if err = uc.categoryService.ValidateIDs([]uint{req.CategoryID}); err != nil {
			return nil, err
		}
		books, total, err = uc.bookRepo.ListByCategory(ctx, req.CategoryID, req.Page, req.PageSize)
	} else {
		books, total, err = uc.bookService.ListBooks(ctx, book.ListParams{
			Page:     req.Page,
			PageSize: req.PageSize,
			SortBy:   req.SortBy,
		})
	}
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

// normalizePaging 分页参数默认值与上限
func normalizePaging(page, pageSize *int) {
	if *page < 1 {
		*page = 1
	}
	if *pageSize < 1 {
		*pageSize = 20
	}
	if *pageSize > 100 {
		*pageSize = 100
	}
}

// totalPages 计算总页数
func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
