package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/category"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// categoryRepository 分类仓储实现(MySQL)
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类
func (r *categoryRepository) Create(ctx context.Context, cat *category.Category) error {
	db := getDB(ctx, r.db)

	model := &CategoryModel{
		Name:        cat.Name,
		Description: cat.Description,
	}

	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}

	cat.ID = model.ID
	cat.CreatedAt = model.CreatedAt
	cat.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	db := getDB(ctx, r.db)

	var model CategoryModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// FindByName 根据名称查找分类(不区分大小写)
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	db := getDB(ctx, r.db)

	var model CategoryModel
	err := db.Where("LOWER(name) = LOWER(?)", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// Update 更新分类
func (r *categoryRepository) Update(ctx context.Context, cat *category.Category) error {
	db := getDB(ctx, r.db)

	model := &CategoryModel{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt,
	}

	if err := db.Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新分类失败")
	}

	cat.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除分类(软删除)
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	result := db.Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// ListAll 查询所有分类(启动预热缓存用,软删除行不包含)
func (r *categoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	db := getDB(ctx, r.db)

	var models []CategoryModel
	if err := db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
