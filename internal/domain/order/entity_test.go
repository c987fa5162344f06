package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	items := []OrderItem{
		{BookID: 1, Quantity: 2, Price: 8900},  // 178.00元
		{BookID: 2, Quantity: 1, Price: 12900}, // 129.00元
	}

	o, err := NewOrder("ORD123", 42, "北京市海淀区中关村大街1号", items)
	require.NoError(t, err)

	assert.Equal(t, "ORD123", o.OrderNo)
	assert.Equal(t, uint(42), o.UserID)
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, int64(30700), o.Total, "总额=2*8900+1*12900")
	assert.False(t, o.OrderedAt.IsZero())
}

func TestNewOrder_Invalid(t *testing.T) {
	_, err := NewOrder("ORD123", 42, "地址", nil)
	assert.Equal(t, ErrInvalidOrderItems, err)

	_, err = NewOrder("ORD123", 42, "地址", []OrderItem{{BookID: 1, Quantity: 0, Price: 100}})
	assert.Equal(t, ErrInvalidQuantity, err)
}

// TestOrder_ChangeStatus 状态更新不限制流转路径,只拒绝非法状态值
func TestOrder_ChangeStatus(t *testing.T) {
	o, err := NewOrder("ORD123", 42, "地址", []OrderItem{{BookID: 1, Quantity: 1, Price: 100}})
	require.NoError(t, err)

	// 正向流转
	require.NoError(t, o.ChangeStatus(OrderStatusPaid))
	assert.Equal(t, OrderStatusPaid, o.Status)

	// 跳过中间状态直接完成:允许
	require.NoError(t, o.ChangeStatus(OrderStatusCompleted))
	assert.Equal(t, OrderStatusCompleted, o.Status)

	// 回退:同样允许
	require.NoError(t, o.ChangeStatus(OrderStatusShipped))
	assert.Equal(t, OrderStatusShipped, o.Status)

	// 非法状态值被拒绝,原状态保持
	err = o.ChangeStatus(OrderStatus(99))
	assert.Equal(t, ErrUnknownStatus, err)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

// TestOrder_TotalImmutable 明细价格是快照,改动明细外的数据不影响总额
func TestOrder_CalculateTotal(t *testing.T) {
	o, err := NewOrder("ORD123", 42, "地址", []OrderItem{
		{BookID: 1, Quantity: 3, Price: 1999},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5997), o.Total)
	assert.Equal(t, o.Total, o.CalculateTotal())
}

func TestOrder_IsOwnedBy(t *testing.T) {
	o, err := NewOrder("ORD123", 42, "地址", []OrderItem{{BookID: 1, Quantity: 1, Price: 100}})
	require.NoError(t, err)
	assert.True(t, o.IsOwnedBy(42))
	assert.False(t, o.IsOwnedBy(43))
}
