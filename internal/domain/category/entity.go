package category

import (
	"time"
)

// Category 分类实体
// 设计说明:
// 1. 名称唯一(不区分大小写),由领域服务在写入前校验
// 2. 删除是软删除,默认查询只返回未删除的行
// 3. 全量分类镜像在进程内缓存中(见cache.go),图书写入时的
//    分类校验和按分类浏览都走缓存,不回表
type Category struct {
	ID          uint
	Name        string // 分类名称(唯一,不区分大小写)
	Description string // 分类描述
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建新分类(工厂方法)
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新分类信息(空字段保持原值)
func (c *Category) UpdateInfo(name, description string) {
	if name != "" {
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
	c.UpdatedAt = time.Now()
}
