package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_String(t *testing.T) {
	cases := []struct {
		status OrderStatus
		want   string
	}{
		{OrderStatusPending, "PENDING"},
		{OrderStatusPaid, "PAID"},
		{OrderStatusShipped, "SHIPPED"},
		{OrderStatusDelivered, "DELIVERED"},
		{OrderStatusCompleted, "COMPLETED"},
		{OrderStatus(0), "UNKNOWN"},
		{OrderStatus(99), "UNKNOWN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.status.String())
	}
}

// TestParseStatus 状态名解析大小写不敏感
func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  OrderStatus
	}{
		{"PENDING", OrderStatusPending},
		{"pending", OrderStatusPending},
		{"Paid", OrderStatusPaid},
		{"shipped", OrderStatusShipped},
		{"DELIVERED", OrderStatusDelivered},
		{"completed", OrderStatusCompleted},
		{" paid ", OrderStatusPaid},
	}
	for _, c := range cases {
		got, err := ParseStatus(c.input)
		require.NoError(t, err, "input=%q", c.input)
		assert.Equal(t, c.want, got, "input=%q", c.input)
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, input := range []string{"", "CANCELLED", "refunded", "2"} {
		_, err := ParseStatus(input)
		assert.Equal(t, ErrUnknownStatus, err, "input=%q", input)
	}
}

// TestOrderStatus_RoundTrip 每个合法状态String后能解析回自身
func TestOrderStatus_RoundTrip(t *testing.T) {
	for status := range statusNames {
		parsed, err := ParseStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}
