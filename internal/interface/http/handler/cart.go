package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookmall/internal/application/cart"
	"github.com/xiebiao/bookmall/internal/interface/http/dto"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 所有接口都从认证上下文取用户ID,不接受请求里指定用户
type CartHandler struct {
	getCartUseCase        *appcart.GetCartUseCase
	addCartItemUseCase    *appcart.AddCartItemUseCase
	updateCartItemUseCase *appcart.UpdateCartItemUseCase
	removeCartItemUseCase *appcart.RemoveCartItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	getCartUseCase *appcart.GetCartUseCase,
	addCartItemUseCase *appcart.AddCartItemUseCase,
	updateCartItemUseCase *appcart.UpdateCartItemUseCase,
	removeCartItemUseCase *appcart.RemoveCartItemUseCase,
) *CartHandler {
	return &CartHandler{
		getCartUseCase:        getCartUseCase,
		addCartItemUseCase:    addCartItemUseCase,
		updateCartItemUseCase: updateCartItemUseCase,
		removeCartItemUseCase: removeCartItemUseCase,
	}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.getCartUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "图书与数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.addCartItemUseCase.Execute(c.Request.Context(), appcart.AddCartItemRequest{
		UserID:   userID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateItem 更新购物车条目数量
// @Summary      更新购物车条目
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "条目ID"
// @Param        request body dto.UpdateCartItemRequest true "新数量"
// @Success      200 {object} response.Response
// @Router       /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	itemID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的条目ID")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateCartItemUseCase.Execute(c.Request.Context(), appcart.UpdateCartItemRequest{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveItem 移除购物车条目
// @Summary      移除购物车条目
// @Tags         购物车
// @Security     BearerAuth
// @Param        id path int true "条目ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	itemID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的条目ID")
		return
	}

	if err := h.removeCartItemUseCase.Execute(c.Request.Context(), userID, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
