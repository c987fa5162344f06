package category

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/category"
)

// CreateCategoryUseCase 创建分类用例
// 名称唯一性(不区分大小写)和缓存写穿由领域服务负责
type CreateCategoryUseCase struct {
	categoryService category.Service
}

// NewCreateCategoryUseCase 创建分类用例
func NewCreateCategoryUseCase(categoryService category.Service) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryService: categoryService}
}

// CreateCategoryRequest 创建分类请求DTO
type CreateCategoryRequest struct {
	Name        string
	Description string
}

// Execute 执行创建分类
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateCategoryRequest) (*CategoryDetail, error) {
	cat, err := uc.categoryService.CreateCategory(ctx, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return toCategoryDetail(cat), nil
}
