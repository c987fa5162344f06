package category

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/category"
)

// DeleteCategoryUseCase 删除分类用例
// 软删除+移出缓存;引用该分类的图书不受影响,
// 详情展示时消失的分类会被跳过
type DeleteCategoryUseCase struct {
	categoryService category.Service
}

// NewDeleteCategoryUseCase 创建删除分类用例
func NewDeleteCategoryUseCase(categoryService category.Service) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryService: categoryService}
}

// Execute 执行删除分类
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uint) error {
	return uc.categoryService.DeleteCategory(ctx, id)
}
