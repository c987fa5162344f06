package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/bookmall/internal/application/category"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	createCategoryUseCase *appcategory.CreateCategoryUseCase
	updateCategoryUseCase *appcategory.UpdateCategoryUseCase
	deleteCategoryUseCase *appcategory.DeleteCategoryUseCase
	listCategoriesUseCase *appcategory.ListCategoriesUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	createCategoryUseCase *appcategory.CreateCategoryUseCase,
	updateCategoryUseCase *appcategory.UpdateCategoryUseCase,
	deleteCategoryUseCase *appcategory.DeleteCategoryUseCase,
	listCategoriesUseCase *appcategory.ListCategoriesUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUseCase: createCategoryUseCase,
		updateCategoryUseCase: updateCategoryUseCase,
		deleteCategoryUseCase: deleteCategoryUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createCategoryUseCase.Execute(c.Request.Context(), appcategory.CreateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateCategory 更新分类
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "更新内容"
// @Success      200 {object} response.Response
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的分类ID")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateCategoryUseCase.Execute(c.Request.Context(), appcategory.UpdateCategoryRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Tags         分类
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的分类ID")
		return
	}

	if err := h.deleteCategoryUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result := h.listCategoriesUseCase.Execute(c.Request.Context())
	response.Success(c, result)
}
