package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/category"
)

// BookDetail 图书详情DTO
type BookDetail struct {
	ID          uint           `json:"id"`
	ISBN        string         `json:"isbn"`
	Title       string         `json:"title"`
	Author      string         `json:"author"`
	Price       int64          `json:"price"`      // 价格(分)
	PriceYuan   string         `json:"price_yuan"` // 价格(元,两位小数)
	CoverURL    string         `json:"cover_url"`
	Description string         `json:"description"`
	Categories  []CategoryInfo `json:"categories"`
	CreatedAt   string         `json:"created_at"`
}

// CategoryInfo 图书所属分类
type CategoryInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookListItem 列表项DTO(不含description,减少传输量)
type BookListItem struct {
	ID        uint   `json:"id"`
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	CoverURL  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
}

// formatPriceYuan 分→元,保留两位小数
// 用decimal做十进制换算,避免float的精度损失
func formatPriceYuan(priceFen int64) string {
	return decimal.NewFromInt(priceFen).Shift(-2).StringFixed(2)
}

// toBookDetail 领域实体→详情DTO
// 分类信息从分类缓存解析;实体引用的分类刚好被删除时跳过该项
func toBookDetail(ctx context.Context, b *book.Book, categoryService category.Service) *BookDetail {
	categories := make([]CategoryInfo, 0, len(b.CategoryIDs))
	for _, id := range b.CategoryIDs {
		cat, err := categoryService.GetCategory(ctx, id)
		if err != nil {
			continue
		}
		categories = append(categories, CategoryInfo{ID: cat.ID, Name: cat.Name})
	}

	return &BookDetail{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		PriceYuan:   formatPriceYuan(b.Price),
		CoverURL:    b.CoverURL,
		Description: b.Description,
		Categories:  categories,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toBookListItems 领域实体列表→列表DTO
func toBookListItems(books []*book.Book) []BookListItem {
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = BookListItem{
			ID:        b.ID,
			ISBN:      b.ISBN,
			Title:     b.Title,
			Author:    b.Author,
			Price:     b.Price,
			PriceYuan: formatPriceYuan(b.Price),
			CoverURL:  b.CoverURL,
			CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return list
}
