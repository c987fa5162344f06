package user

import (
	"context"
)

// Repository 用户仓储接口(依赖倒置原则)
// 接口定义在domain层,具体实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建用户
	// 邮箱已存在时返回apperrors.ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 不存在返回apperrors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户
	// 不存在返回apperrors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
}
