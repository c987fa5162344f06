package category

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/category"
)

// ListCategoriesUseCase 分类列表用例
// 全量读缓存,不分页(分类数量有限)
type ListCategoriesUseCase struct {
	categoryService category.Service
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(categoryService category.Service) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryService: categoryService}
}

// Execute 执行分类列表查询,按ID升序
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) []*CategoryDetail {
	categories := uc.categoryService.ListCategories(ctx)
	list := make([]*CategoryDetail, len(categories))
	for i, cat := range categories {
		list[i] = toCategoryDetail(cat)
	}
	return list
}
