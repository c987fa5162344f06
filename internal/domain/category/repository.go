package category

import (
	"context"
)

// Repository 分类仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类(不含已软删除)
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByName 按名称查找分类(不区分大小写,不含已软删除)
	// 用于创建/改名时的唯一性检查
	FindByName(ctx context.Context, name string) (*Category, error)

	// Update 更新分类
	Update(ctx context.Context, category *Category) error

	// Delete 删除分类(软删除)
	Delete(ctx context.Context, id uint) error

	// ListAll 全量查询未删除的分类,用于启动时预热缓存
	ListAll(ctx context.Context) ([]*Category, error)
}
