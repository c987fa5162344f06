package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

var errUnavailable = errors.New("service unavailable")

// TestBreaker_ClosedState 测试关闭状态（正常放行）
func TestBreaker_ClosedState(t *testing.T) {
	b := New("test", Config{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	})

	for i := 0; i < 10; i++ {
		err := b.Execute(func() error {
			return nil
		})
		if err != nil {
			t.Fatalf("期望成功，实际失败: %v", err)
		}
	}

	if b.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", b.State())
	}
}

// TestBreaker_OpenState 测试熔断触发
func TestBreaker_OpenState(t *testing.T) {
	b := New("test", Config{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	})

	// 连续失败5次触发熔断
	for i := 0; i < 5; i++ {
		_ = b.Execute(func() error {
			return errUnavailable
		})
	}

	if b.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", b.State())
	}

	// 熔断期间请求直接失败，不调用fn
	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrOpenState) {
		t.Errorf("期望ErrOpenState，实际%v", err)
	}
	if called {
		t.Error("熔断状态下不应调用fn")
	}
}

// TestBreaker_FailureCountReset 测试成功请求重置失败计数
func TestBreaker_FailureCountReset(t *testing.T) {
	b := New("test", Config{
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
	})

	// 失败2次后成功1次，计数清零
	_ = b.Execute(func() error { return errUnavailable })
	_ = b.Execute(func() error { return errUnavailable })
	_ = b.Execute(func() error { return nil })

	// 再失败2次仍不应熔断
	_ = b.Execute(func() error { return errUnavailable })
	_ = b.Execute(func() error { return errUnavailable })

	if b.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", b.State())
	}
}

// TestBreaker_HalfOpenRecovery 测试半开探测成功后恢复
func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b := New("test", Config{
		FailureThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
	})

	_ = b.Execute(func() error { return errUnavailable })
	_ = b.Execute(func() error { return errUnavailable })
	if b.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", b.State())
	}

	// 等待熔断超时进入半开
	time.Sleep(60 * time.Millisecond)
	if b.State() != StateHalfOpen {
		t.Fatalf("期望状态为HALF_OPEN，实际%s", b.State())
	}

	// 探测成功恢复Closed
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("半开探测失败: %v", err)
	}
	if b.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", b.State())
	}
}

// TestBreaker_HalfOpenProbeFailure 测试半开探测失败后重新熔断
func TestBreaker_HalfOpenProbeFailure(t *testing.T) {
	b := New("test", Config{
		FailureThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
	})

	_ = b.Execute(func() error { return errUnavailable })
	_ = b.Execute(func() error { return errUnavailable })

	time.Sleep(60 * time.Millisecond)

	// 探测失败，立即回到Open
	_ = b.Execute(func() error { return errUnavailable })
	if b.State() != StateOpen {
		t.Errorf("期望状态为OPEN，实际%s", b.State())
	}

	err := b.Execute(func() error { return nil })
	if !errors.Is(err, ErrOpenState) {
		t.Errorf("期望ErrOpenState，实际%v", err)
	}
}

// TestState_String 测试状态名输出
func TestState_String(t *testing.T) {
	cases := map[State]string{
		StateClosed:   "CLOSED",
		StateOpen:     "OPEN",
		StateHalfOpen: "HALF_OPEN",
		State(99):     "UNKNOWN",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %s, 期望%s", state, got, want)
		}
	}
}
