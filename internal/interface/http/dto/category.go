package dto

// CreateCategoryRequest HTTP创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"计算机"`
	Description string `json:"description" binding:"max=500" example:"计算机与编程类图书"`
}

// UpdateCategoryRequest HTTP更新分类请求
// name为空表示不改名
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"max=500"`
}
