package category

import (
	"context"
	"strings"
)

// Service 分类领域服务接口
// 设计说明:
// 1. 所有写操作先落库、再同步更新缓存,更新完才返回——
//    调用方返回后看到的缓存一定包含本次变更
// 2. 名称唯一性不区分大小写,在写入前用FindByName检查
type Service interface {
	// WarmCache 启动时全量预热缓存
	WarmCache(ctx context.Context) error

	// CreateCategory 创建分类
	CreateCategory(ctx context.Context, name, description string) (*Category, error)

	// GetCategory 根据ID获取分类(走缓存)
	GetCategory(ctx context.Context, id uint) (*Category, error)

	// UpdateCategory 更新分类(改名需重新校验唯一性)
	UpdateCategory(ctx context.Context, id uint, name, description string) (*Category, error)

	// DeleteCategory 删除分类(软删除+移出缓存)
	DeleteCategory(ctx context.Context, id uint) error

	// ListCategories 列出所有分类(走缓存)
	ListCategories(ctx context.Context) []*Category

	// ValidateIDs 校验一组分类ID全部存在(走缓存)
	// 图书创建/更新时调用,避免逐个ID回表
	ValidateIDs(ids []uint) error
}

type service struct {
	repo  Repository
	cache *Cache
}

// NewService 创建分类领域服务
func NewService(repo Repository, cache *Cache) Service {
	return &service{repo: repo, cache: cache}
}

// WarmCache 启动时全量预热缓存
func (s *service) WarmCache(ctx context.Context) error {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	s.cache.Fill(categories)
	return nil
}

// CreateCategory 创建分类
func (s *service) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	// 名称唯一性检查(不区分大小写)
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && err != ErrCategoryNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameDuplicate
	}

	cat := NewCategory(name, description)
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	// 写穿:落库成功后立即更新缓存,再返回
	s.cache.Put(cat)
	return cat, nil
}

// GetCategory 根据ID获取分类
func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.cache.Get(id)
}

// UpdateCategory 更新分类
func (s *service) UpdateCategory(ctx context.Context, id uint, name, description string) (*Category, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name != "" && !strings.EqualFold(name, cat.Name) {
		// 改名需重新校验唯一性
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil && err != ErrCategoryNotFound {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrNameDuplicate
		}
	}

	cat.UpdateInfo(name, description)

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	s.cache.Put(cat)
	return cat, nil
}

// DeleteCategory 删除分类
func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// 删除同样在返回前同步移出缓存
	s.cache.Remove(id)
	return nil
}

// ListCategories 列出所有分类
func (s *service) ListCategories(ctx context.Context) []*Category {
	return s.cache.List()
}

// ValidateIDs 校验一组分类ID全部存在
func (s *service) ValidateIDs(ids []uint) error {
	return s.cache.ValidateIDs(ids)
}
