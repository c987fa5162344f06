package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 默认查询只返回未软删除的行,ExistsByISBN是唯一的例外
type Repository interface {
	// Create 创建图书(含分类关联)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书(不含已软删除)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// ExistsByISBN 判断ISBN是否已被占用
	// 注意:检查范围包括已软删除的行,防止删除后复用ISBN
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// Update 更新图书信息(含分类关联)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	// 购物车条目的级联清理由应用层在同一事务中显式完成
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 按组合规约搜索图书
	Search(ctx context.Context, spec Specification, page, pageSize int) ([]*Book, int64, error)

	// ListByCategory 分页查询某分类下的图书
	ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	SortBy   string // 排序字段(price_asc, price_desc, created_at_desc)
}
