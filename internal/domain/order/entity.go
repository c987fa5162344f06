package order

import (
	"time"
)

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体,只能通过Order访问
// 2. OrderNo是业务主键,全局唯一,时间有序
// 3. Total冗余存储订单总金额(避免重复计算,防止改价攻击)
// 4. 订单创建后金额不再变化:明细中的Price是下单时刻的价格快照,
//    图书后续改价、下架都不影响历史订单
type Order struct {
	ID              uint
	OrderNo         string      // 订单号(业务主键,全局唯一)
	UserID          uint        // 买家用户ID
	Total           int64       // 订单总金额(分),冗余字段
	Status          OrderStatus // 订单状态
	ShippingAddress string      // 收货地址
	Items           []OrderItem // 订单明细(聚合内的子实体)
	OrderedAt       time.Time   // 下单时间
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem 订单明细项
// 设计说明:
// 1. 不是独立聚合根,必须通过Order访问
// 2. Price记录下单时的单价(历史价格快照)
// 3. 不直接关联Book对象,只保存BookID(避免跨聚合引用)
type OrderItem struct {
	ID       uint
	OrderID  uint  // 所属订单ID
	BookID   uint  // 图书ID
	Quantity int   // 购买数量
	Price    int64 // 下单时的单价(分),商家改价不影响历史订单金额
}

// Subtotal 明细行小计(分)
func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// NewOrder 创建新订单(工厂方法)
// 订单号由外部传入,初始状态为Pending,总额按明细实时计算
func NewOrder(orderNo string, userID uint, shippingAddress string, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrInvalidOrderItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	now := time.Now()
	o := &Order{
		OrderNo:         orderNo,
		UserID:          userID,
		Status:          OrderStatusPending,
		ShippingAddress: shippingAddress,
		Items:           items,
		OrderedAt:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	o.Total = o.CalculateTotal()
	return o, nil
}

// CalculateTotal 按明细计算订单总金额(分)
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// ChangeStatus 更新订单状态
// 只校验目标状态的合法性,不限制流转路径
func (o *Order) ChangeStatus(target OrderStatus) error {
	if !target.IsValid() {
		return ErrUnknownStatus
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查订单是否属于指定用户,防止访问他人订单
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
