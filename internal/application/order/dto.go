package order

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

// OrderDetail 订单详情DTO
type OrderDetail struct {
	ID              uint            `json:"id"`
	OrderNo         string          `json:"order_no"`
	Total           int64           `json:"total"`      // 总金额(分)
	TotalYuan       string          `json:"total_yuan"` // 总金额(元)
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItemView `json:"items"`
	OrderedAt       string          `json:"ordered_at"`
}

// OrderItemView 订单明细视图
// Price是下单时刻的快照价,与图书当前价格无关
type OrderItemView struct {
	BookID       uint   `json:"book_id"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
	PriceYuan    string `json:"price_yuan"`
	Subtotal     int64  `json:"subtotal"`
	SubtotalYuan string `json:"subtotal_yuan"`
}

// OrderSummary 订单列表项DTO(不含明细)
type OrderSummary struct {
	ID        uint   `json:"id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
	ItemCount int    `json:"item_count"`
	OrderedAt string `json:"ordered_at"`
}

// toOrderDetail 领域实体→详情DTO
func toOrderDetail(o *order.Order) *OrderDetail {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		subtotal := item.Subtotal()
		items[i] = OrderItemView{
			BookID:       item.BookID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			PriceYuan:    formatYuan(item.Price),
			Subtotal:     subtotal,
			SubtotalYuan: formatYuan(subtotal),
		}
	}

	return &OrderDetail{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		Total:           o.Total,
		TotalYuan:       formatYuan(o.Total),
		Status:          o.Status.String(),
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		OrderedAt:       o.OrderedAt.Format("2006-01-02 15:04:05"),
	}
}

// toOrderSummary 领域实体→列表项DTO
func toOrderSummary(o *order.Order) OrderSummary {
	return OrderSummary{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		Total:     o.Total,
		TotalYuan: formatYuan(o.Total),
		Status:    o.Status.String(),
		ItemCount: len(o.Items),
		OrderedAt: o.OrderedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatYuan 分→元,保留两位小数
func formatYuan(fen int64) string {
	return decimal.NewFromInt(fen).Shift(-2).StringFixed(2)
}
