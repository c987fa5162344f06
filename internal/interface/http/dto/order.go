package dto

// CreateOrderRequest HTTP下单请求
// 下单对象是整个购物车,不在请求里传条目
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=500" example:"北京市海淀区中关村大街1号"`
}

// ChangeOrderStatusRequest HTTP订单状态更新请求
// 状态名大小写不敏感:PENDING/PAID/SHIPPED/DELIVERED/COMPLETED
type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=20" example:"PAID"`
}

// ListOrdersRequest HTTP订单列表请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
