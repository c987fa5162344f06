package book

import (
	"context"
	"regexp"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装跨实体的业务规则校验(ISBN格式、唯一性、价格范围)
// 2. 分类ID的存在性校验属于分类聚合,由应用层用分类缓存完成
// 3. 删除图书涉及购物车级联清理和事务,由应用层用例编排
type Service interface {
	// PublishBook 发布图书(上架)
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字,允许连字符)
	// - 价格必须在1-9999999分之间
	// - ISBN不能与任何现有行重复(包括已软删除的行)
	PublishBook(ctx context.Context, isbn, title, author string, price int64, coverURL, description string, categoryIDs []uint) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息(基本信息+价格+分类)
	// price<=0表示不修改价格,categoryIDs为nil表示不修改分类
	UpdateBook(ctx context.Context, id uint, title, author, coverURL, description string, price int64, categoryIDs []uint) (*Book, error)

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 组合条件搜索
	// 所有条件都是可选的,无条件时等价于全量列表
	SearchBooks(ctx context.Context, criteria SearchCriteria, page, pageSize int) ([]*Book, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishBook 发布图书
func (s *service) PublishBook(ctx context.Context, isbn, title, author string, price int64, coverURL, description string, categoryIDs []uint) (*Book, error) {
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	if price < 1 || price > 9999999 {
		return nil, ErrInvalidPrice
	}

	// ISBN唯一性检查覆盖已软删除的行:
	// 删掉一本书再上架同ISBN的新书会撞唯一索引,这里提前拦截
	exists, err := s.repo.ExistsByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrISBNDuplicate
	}

	b := NewBook(isbn, title, author, price, coverURL, description, categoryIDs)

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id uint, title, author, coverURL, description string, price int64, categoryIDs []uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.UpdateInfo(title, author, coverURL, description)

	if price > 0 {
		if err := b.UpdatePrice(price); err != nil {
			return nil, err
		}
	}

	if categoryIDs != nil {
		b.ReplaceCategories(categoryIDs)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// SearchBooks 组合条件搜索
func (s *service) SearchBooks(ctx context.Context, criteria SearchCriteria, page, pageSize int) ([]*Book, int64, error) {
	spec := BuildSpecification(criteria)
	return s.repo.Search(ctx, spec, page, pageSize)
}

// isValidISBN 校验ISBN格式
// 支持ISBN-10和ISBN-13,允许连字符分隔
// 简化实现:只检查位数和字符集(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9]`)
	clean := re.ReplaceAllString(isbn, "")

	length := len(clean)
	return length == 10 || length == 13
}
