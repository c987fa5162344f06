package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required,min=1" example:"1"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=999" example:"2"`
}

// UpdateCartItemRequest HTTP更新购物车条目请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999" example:"3"`
}
