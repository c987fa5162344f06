package dto

// PublishBookRequest HTTP上架请求
type PublishBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Title       string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author      string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	Price       int64  `json:"price" binding:"required,min=1,max=9999999" example:"5900"` // 价格(分)
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Description string `json:"description" binding:"max=5000" example:"Go语言实战入门书籍"`
	CategoryIDs []uint `json:"category_ids" binding:"omitempty,dive,min=1" example:"1,2"`
}

// UpdateBookRequest HTTP图书更新请求
// 空字段表示不修改;category_ids传空数组表示清空分类,不传表示不修改
type UpdateBookRequest struct {
	Title       string  `json:"title" binding:"omitempty,max=200"`
	Author      string  `json:"author" binding:"omitempty,max=100"`
	Price       int64   `json:"price" binding:"omitempty,min=1,max=9999999"`
	CoverURL    string  `json:"cover_url" binding:"omitempty,url,max=500"`
	Description string  `json:"description" binding:"omitempty,max=5000"`
	CategoryIDs *[]uint `json:"category_ids" binding:"omitempty"`
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc" example:"created_at_desc"`
	CategoryID uint   `form:"category_id" binding:"omitempty,min=1"`
}

// SearchBooksRequest HTTP图书搜索请求
// 所有条件可选,可自由组合;price_range接受0-2个十进制数(元),
// 如price_range=10&price_range=50表示10元到50元
type SearchBooksRequest struct {
	Title      string   `form:"title" binding:"omitempty,max=200"`
	Author     string   `form:"author" binding:"omitempty,max=100"`
	ISBN       string   `form:"isbn" binding:"omitempty,max=20"`
	PriceRange []string `form:"price_range" binding:"omitempty,max=2,dive,max=20"`
	Page       int      `form:"page" binding:"omitempty,min=1"`
	PageSize   int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}
