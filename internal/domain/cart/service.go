package cart

import (
	"context"

	"github.com/xiebiao/bookmall/internal/domain/book"
)

// Service 购物车领域服务接口
// 设计说明:
// 1. 所有操作以userID为入口,条目级操作先取出该用户的购物车,
//    再在购物车内定位条目——条目属于别人时表现为"不存在",
//    天然防止横向越权
// 2. 加购按图书合并数量(merge-on-add),更新按条目覆盖数量
// 3. 图书被并发删除时,引用它的条目由目录侧级联清理;本服务
//    在下一次访问时把消失的图书当作"不存在"处理
type Service interface {
	// GetCart 获取用户购物车,不存在则创建空购物车
	// 幂等:只有第一次调用有创建副作用
	GetCart(ctx context.Context, userID uint) (*Cart, error)

	// AddItem 加购
	// 购物车里已有该图书 → 数量累加;没有 → 校验图书存在后新增条目
	AddItem(ctx context.Context, userID, bookID uint, quantity int) (*Cart, error)

	// UpdateItem 更新条目数量(覆盖,不合并)
	// 条目必须属于该用户的购物车,否则返回ErrCartItemNotFound
	UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*Cart, error)

	// RemoveItem 删除条目
	// 同样受归属校验约束,删除他人条目返回ErrCartItemNotFound
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

// NewService 创建购物车领域服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{repo: repo, bookRepo: bookRepo}
}

// GetCart 获取用户购物车,不存在则创建
func (s *service) GetCart(ctx context.Context, userID uint) (*Cart, error) {
	c, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if err != ErrCartNotFound {
		return nil, err
	}

	// 惰性创建空购物车
	c = NewCart(userID)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem 加购(merge-on-add)
func (s *service) AddItem(ctx context.Context, userID, bookID uint, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing := c.FindItemByBook(bookID); existing != nil {
		// 合并:同一本书只保留一条记录,数量累加
		if err := s.repo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
		return s.repo.FindByUserID(ctx, userID)
	}

	// 新条目必须先确认图书存在(已软删除的图书查不到,
	// 返回ErrBookNotFound)
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	item := &CartItem{
		CartID:   c.ID,
		BookID:   bookID,
		Quantity: quantity,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	return s.repo.FindByUserID(ctx, userID)
}

// UpdateItem 更新条目数量
func (s *service) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 归属校验:条目必须在该用户的购物车里
	item := c.FindItem(itemID)
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.repo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}

	return s.repo.FindByUserID(ctx, userID)
}

// RemoveItem 删除条目
func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	c, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	item := c.FindItem(itemID)
	if item == nil {
		return ErrCartItemNotFound
	}

	return s.repo.RemoveItem(ctx, item.ID)
}
