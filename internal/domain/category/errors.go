package category

import (
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	// 不存在和已软删除统一返回此错误,不区分原因
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "找不到对应的分类")

	// ErrNameDuplicate 分类名称已存在(不区分大小写)
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeCategoryDuplicate, "分类名称已存在")

	// ErrInvalidName 分类名称不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")
)
