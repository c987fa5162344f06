package cart

import (
	"time"
)

// Cart 购物车实体(聚合根)
// 设计说明:
// 1. 一个用户只有一张购物车(UserID唯一),第一次访问时惰性创建
// 2. CartItem是聚合内的子实体,只能通过Cart访问,删除购物车时
//    级联删除所有条目
// 3. 购物车条目展示的是图书的实时价格,下单时才做价格快照
//    (快照属于订单聚合,见order包)
type Cart struct {
	ID        uint
	UserID    uint       // 归属用户ID(1:1)
	Items     []CartItem // 购物车条目
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem 购物车条目
// 不变式:同一购物车内每本图书至多一条记录,重复加购走合并
// (由领域服务的merge-on-add保证,不依赖数据库唯一约束)
type CartItem struct {
	ID       uint
	CartID   uint // 所属购物车ID
	BookID   uint // 图书ID
	Quantity int  // 数量(正整数)
}

// NewCart 创建空购物车(工厂方法)
func NewCart(userID uint) *Cart {
	now := time.Now()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindItemByBook 按图书查找条目,用于加购时的合并判断
func (c *Cart) FindItemByBook(bookID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItem 按条目ID查找,找不到说明条目不存在或属于别人的购物车
func (c *Cart) FindItem(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
