package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/order"
)

func createTestOrder(t *testing.T, store *fakeStore) *OrderDetail {
	t.Helper()
	uc := newTestUseCase(store, nil)
	resp, err := uc.Execute(context.Background(), CreateOrderRequest{UserID: 42, ShippingAddress: "地址"})
	require.NoError(t, err)
	return resp
}

// TestChangeOrderStatus 状态名大小写不敏感,流转路径不受限制
func TestChangeOrderStatus(t *testing.T) {
	store := newTestStore()
	created := createTestOrder(t, store)
	uc := NewChangeOrderStatusUseCase(&fakeOrderRepo{store: store})

	resp, err := uc.Execute(context.Background(), ChangeOrderStatusRequest{
		UserID:  42,
		OrderID: created.ID,
		Status:  "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAID", resp.Status)

	// 跳过中间状态直接完成
	resp, err = uc.Execute(context.Background(), ChangeOrderStatusRequest{
		UserID:  42,
		OrderID: created.ID,
		Status:  "COMPLETED",
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
}

// TestChangeOrderStatus_UnknownStatus 未知状态名被拒绝
func TestChangeOrderStatus_UnknownStatus(t *testing.T) {
	store := newTestStore()
	created := createTestOrder(t, store)
	uc := NewChangeOrderStatusUseCase(&fakeOrderRepo{store: store})

	_, err := uc.Execute(context.Background(), ChangeOrderStatusRequest{
		UserID:  42,
		OrderID: created.ID,
		Status:  "CANCELLED",
	})
	assert.Equal(t, order.ErrUnknownStatus, err)
}

// TestChangeOrderStatus_Ownership 他人订单表现为"不存在"
func TestChangeOrderStatus_Ownership(t *testing.T) {
	store := newTestStore()
	created := createTestOrder(t, store)
	uc := NewChangeOrderStatusUseCase(&fakeOrderRepo{store: store})

	_, err := uc.Execute(context.Background(), ChangeOrderStatusRequest{
		UserID:  7,
		OrderID: created.ID,
		Status:  "PAID",
	})
	assert.Equal(t, order.ErrOrderNotFound, err)
}

// TestGetOrder_Ownership 订单详情同样受归属校验约束
func TestGetOrder_Ownership(t *testing.T) {
	store := newTestStore()
	created := createTestOrder(t, store)
	uc := NewGetOrderUseCase(&fakeOrderRepo{store: store})

	resp, err := uc.Execute(context.Background(), 42, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNo, resp.OrderNo)

	_, err = uc.Execute(context.Background(), 7, created.ID)
	assert.Equal(t, order.ErrOrderNotFound, err)

	_, err = uc.Execute(context.Background(), 42, 999)
	assert.Equal(t, order.ErrOrderNotFound, err)
}
