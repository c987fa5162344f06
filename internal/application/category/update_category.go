package category

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/category"
)

// UpdateCategoryUseCase 更新分类用例
type UpdateCategoryUseCase struct {
	categoryService category.Service
}

// NewUpdateCategoryUseCase 创建更新分类用例
func NewUpdateCategoryUseCase(categoryService category.Service) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryService: categoryService}
}

// UpdateCategoryRequest 更新分类请求DTO
// Name为空表示不改名,Description总是覆盖
type UpdateCategoryRequest struct {
	ID          uint
	Name        string
	Description string
}

// Execute 执行更新分类
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateCategoryRequest) (*CategoryDetail, error) {
	cat, err := uc.categoryService.UpdateCategory(ctx, req.ID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return toCategoryDetail(cat), nil
}
