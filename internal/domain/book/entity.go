package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ISBN作为业务唯一标识,唯一性覆盖已软删除的行(防止删除后
//    复用ISBN导致"复活"冲突)
// 3. 只保存分类ID,不直接引用Category对象(避免跨聚合引用)
type Book struct {
	ID          uint
	ISBN        string // ISBN号(国际标准书号)
	Title       string // 书名
	Author      string // 作者
	Price       int64  // 价格(单位:分,1元=100分)
	CoverURL    string // 封面图片URL
	Description string // 图书描述
	CategoryIDs []uint // 所属分类ID集合
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// isbn需调用方先验证格式,price必须>0
func NewBook(isbn, title, author string, price int64, coverURL, description string, categoryIDs []uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Price:       price,
		CoverURL:    coverURL,
		Description: description,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息(空字段保持原值)
func (b *Book) UpdateInfo(title, author, coverURL, description string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if coverURL != "" {
		b.CoverURL = coverURL
	}
	if description != "" {
		b.Description = description
	}
	b.UpdatedAt = time.Now()
}

// ReplaceCategories 替换分类集合
// 业务规则:分类ID必须先经过分类缓存校验(由应用层保证)
func (b *Book) ReplaceCategories(categoryIDs []uint) {
	b.CategoryIDs = categoryIDs
	b.UpdatedAt = time.Now()
}
