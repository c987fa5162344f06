package order

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	// 订单属于他人时同样返回此错误,不泄露订单是否真实存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "找不到对应的订单")

	// ErrEmptyCart 购物车为空,无法下单
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeOrderProcessing, "购物车为空，无法下单")

	// ErrUnknownStatus 未知的订单状态
	ErrUnknownStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "未知的订单状态")

	// ErrInvalidOrderItems 订单明细不合法
	ErrInvalidOrderItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")
)
