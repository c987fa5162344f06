package cart

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在(仓储层内部使用,
	// 领域服务会自动创建,不会外泄)
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeNotFound, "找不到对应的购物车")

	// ErrCartItemNotFound 购物车条目不存在
	// 条目不存在和条目属于他人的购物车统一返回此错误,
	// 防止通过猜测条目ID探测他人购物车
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "找不到对应的购物车条目")

	// ErrInvalidQuantity 数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
