package category

import (
	"github.com/xiebiao/bookmall/internal/domain/category"
)

// CategoryDetail 分类DTO
type CategoryDetail struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// toCategoryDetail 领域实体→DTO
func toCategoryDetail(cat *category.Category) *CategoryDetail {
	return &CategoryDetail{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
