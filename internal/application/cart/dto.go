package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// CartView 购物车视图DTO
// 展示的是图书的实时价格,价格快照在下单时才固定(属于订单聚合)
type CartView struct {
	ID        uint           `json:"id"`
	Items     []CartItemView `json:"items"`
	Total     int64          `json:"total"`      // 实时合计(分)
	TotalYuan string         `json:"total_yuan"` // 实时合计(元)
}

// CartItemView 购物车条目视图
type CartItemView struct {
	ID           uint   `json:"id"`
	BookID       uint   `json:"book_id"`
	Title        string `json:"title"`
	CoverURL     string `json:"cover_url"`
	Price        int64  `json:"price"` // 图书当前单价(分)
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"` // 当前单价*数量(分)
	SubtotalYuan string `json:"subtotal_yuan"`
}

// toCartView 组装购物车视图
// 逐条目回查图书取实时价格;图书刚好在展示瞬间被下架时
// (级联清理尚未被本次查询看到)跳过该条目
func toCartView(ctx context.Context, c *cart.Cart, bookRepo book.Repository) (*CartView, error) {
	view := &CartView{
		ID:    c.ID,
		Items: make([]CartItemView, 0, len(c.Items)),
	}

	for _, item := range c.Items {
		b, err := bookRepo.FindByID(ctx, item.BookID)
		if err != nil {
			if err == book.ErrBookNotFound {
				continue
			}
			return nil, err
		}

		subtotal := b.Price * int64(item.Quantity)
		view.Items = append(view.Items, CartItemView{
			ID:           item.ID,
			BookID:       b.ID,
			Title:        b.Title,
			CoverURL:     b.CoverURL,
			Price:        b.Price,
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
			SubtotalYuan: formatYuan(subtotal),
		})
		view.Total += subtotal
	}

	view.TotalYuan = formatYuan(view.Total)
	return view, nil
}

// formatYuan 分→元,保留两位小数
func formatYuan(fen int64) string {
	return decimal.NewFromInt(fen).Shift(-2).StringFixed(2)
}
