package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmall/internal/domain/cart"
	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 条目是硬删除;写方法都用getDB参与外层事务
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 创建购物车
func (r *cartRepository) Create(ctx context.Context, c *cart.Cart) error {
	db := getDB(ctx, r.db)

	model := &CartModel{UserID: c.UserID}
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByUserID 查询用户的购物车(含条目)
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	db := getDB(ctx, r.db)

	var model CartModel
	err := db.Preload("Items").Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartEntity(&model), nil
}

// AddItem 插入一条购物车条目
func (r *cartRepository) AddItem(ctx context.Context, item *cart.CartItem) error {
	db := getDB(ctx, r.db)

	model := &CartItemModel{
		CartID:   item.CartID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加购物车条目失败")
	}

	item.ID = model.ID
	return nil
}

// UpdateItemQuantity 更新条目数量
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	db := getDB(ctx, r.db)

	result := db.Model(&CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

// RemoveItem 删除一条条目
func (r *cartRepository) RemoveItem(ctx context.Context, itemID uint) error {
	db := getDB(ctx, r.db)

	result := db.Delete(&CartItemModel{}, itemID)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

// RemoveItemsByBookID 删除所有引用某图书的条目(跨所有购物车)
// 图书下架时的级联清理,与图书软删除在同一事务中执行
func (r *cartRepository) RemoveItemsByBookID(ctx context.Context, bookID uint) error {
	db := getDB(ctx, r.db)

	err := db.Where("book_id = ?", bookID).Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清理购物车条目失败")
	}
	return nil
}

// ClearItems 清空购物车的全部条目(下单成功后)
func (r *cartRepository) ClearItems(ctx context.Context, cartID uint) error {
	db := getDB(ctx, r.db)

	err := db.Where("cart_id = ?", cartID).Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// toCartEntity GORM模型 → 领域实体
func toCartEntity(model *CartModel) *cart.Cart {
	items := make([]cart.CartItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = cart.CartItem{
			ID:       item.ID,
			CartID:   item.CartID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}

	return &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
