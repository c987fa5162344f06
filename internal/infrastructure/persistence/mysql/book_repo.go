package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/book"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 图书与分类的多对多关系通过book_categories关联表维护,
//    更新时整体替换(删旧插新),与实体的CategoryIDs语义一致
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书(含分类关联)
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)

	model := &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		CoverURL:    b.CoverURL,
		Description: b.Description,
	}

	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	if err := r.replaceCategories(db, model.ID, b.CategoryIDs); err != nil {
		return err
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书(软删除行不可见)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	db := getDB(ctx, r.db)

	var model BookModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	categoryIDs, err := r.categoryIDsOf(db, model.ID)
	if err != nil {
		return nil, err
	}

	return toBookEntity(&model, categoryIDs), nil
}

// ExistsByISBN 判断ISBN是否已被占用
// Unscoped绕过软删除过滤:删掉的书仍占用其ISBN
func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	db := getDB(ctx, r.db)

	var count int64
	err := db.Unscoped().Model(&BookModel{}).Where("isbn = ?", isbn).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询ISBN失败")
	}
	return count > 0, nil
}

// Update 更新图书信息(含分类关联)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)

	model := &BookModel{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}

	if err := db.Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	if err := r.replaceCategories(db, b.ID, b.CategoryIDs); err != nil {
		return err
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(软删除)
// 分类关联保留:软删除的书可能需要人工恢复
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&BookModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	query = applySort(query, params.SortBy)
	query = query.Limit(params.PageSize).Offset((params.Page - 1) * params.PageSize)

	var models []BookModel
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toBookEntities(models), total, nil
}

// Search 按组合规约搜索图书
// 规约的谓词列表按固定顺序逐个AND到查询上;空规约退化为全量列表
func (r *bookRepository) Search(ctx context.Context, spec book.Specification, page, pageSize int) ([]*book.Book, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&BookModel{})

	for _, p := range spec.Predicates() {
		query = query.Where(p.Expr, p.Args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询搜索结果总数失败")
	}

	var models []BookModel
	err := query.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "搜索图书失败")
	}

	return toBookEntities(models), total, nil
}

// ListByCategory 分页查询某分类下的图书
func (r *bookRepository) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*book.Book, int64, error) {
	db := getDB(ctx, r.db)

	query := db.Model(&BookModel{}).
		Joins("JOIN book_categories ON book_categories.book_id = books.id").
		Where("book_categories.category_id = ?", categoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类图书总数失败")
	}

	var models []BookModel
	err := query.
		Order("books.created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类图书失败")
	}

	return toBookEntities(models), total, nil
}

// replaceCategories 整体替换图书的分类关联(删旧插新)
func (r *bookRepository) replaceCategories(db *gorm.DB, bookID uint, categoryIDs []uint) error {
	if err := db.Where("book_id = ?", bookID).Delete(&BookCategoryModel{}).Error; err != nil {
		return apperrors.Wrap(err, "清理图书分类关联失败")
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	rows := make([]BookCategoryModel, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		rows[i] = BookCategoryModel{BookID: bookID, CategoryID: categoryID}
	}
	if err := db.Create(&rows).Error; err != nil {
		return apperrors.Wrap(err, "保存图书分类关联失败")
	}
	return nil
}

// categoryIDsOf 查询图书的分类ID集合
func (r *bookRepository) categoryIDsOf(db *gorm.DB, bookID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&BookCategoryModel{}).
		Where("book_id = ?", bookID).
		Order("category_id ASC").
		Pluck("category_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书分类失败")
	}
	return ids, nil
}

// applySort 应用列表排序规则
func applySort(query *gorm.DB, sortBy string) *gorm.DB {
	switch sortBy {
	case "price_asc":
		return query.Order("price ASC")
	case "price_desc":
		return query.Order("price DESC")
	default:
		return query.Order("created_at DESC")
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel, categoryIDs []uint) *book.Book {
	return &book.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		Author:      model.Author,
		Price:       model.Price,
		CoverURL:    model.CoverURL,
		Description: model.Description,
		CategoryIDs: categoryIDs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toBookEntities 批量转换(列表场景不加载分类关联)
func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i], nil)
	}
	return books
}
