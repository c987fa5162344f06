package order

import (
	"strings"
)

// OrderStatus 订单状态
// 设计说明:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 状态值1-5递增,对应订单的正常生命周期
// 3. 状态更新不做相邻性校验:运营侧存在补录、撤销发货等场景,
//    跳转和回退都是合法操作,由调用方自行负责语义
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1 // 待支付
	OrderStatusPaid      OrderStatus = 2 // 已支付
	OrderStatusShipped   OrderStatus = 3 // 已发货
	OrderStatusDelivered OrderStatus = 4 // 已送达
	OrderStatusCompleted OrderStatus = 5 // 已完成
)

// statusNames 状态的对外表示,大写英文,用于API和存储导出
var statusNames = map[OrderStatus]string{
	OrderStatusPending:   "PENDING",
	OrderStatusPaid:      "PAID",
	OrderStatusShipped:   "SHIPPED",
	OrderStatusDelivered: "DELIVERED",
	OrderStatusCompleted: "COMPLETED",
}

// String 实现Stringer接口(方便日志输出和DTO转换)
func (s OrderStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid 状态值是否在合法范围内
func (s OrderStatus) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus 解析状态名,大小写不敏感
// "paid"、"Paid"、"PAID"均解析为OrderStatusPaid,
// 未知名称返回ErrUnknownStatus
func ParseStatus(name string) (OrderStatus, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for status, statusName := range statusNames {
		if statusName == upper {
			return status, nil
		}
	}
	return 0, ErrUnknownStatus
}
