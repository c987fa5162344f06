// Package circuitbreaker 简单的熔断器
//
// 三种状态：
// - Closed: 正常放行，统计连续失败次数
// - Open: 连续失败达到阈值后熔断，请求直接失败
// - HalfOpen: 熔断超时后放行一个探测请求，成功则恢复Closed
//
// 当前用于保护RabbitMQ事件发布：Broker宕机时避免每个请求都
// 阻塞在连接超时上
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String 实现Stringer接口(方便日志输出)
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开时请求直接失败
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	FailureThreshold int           // 连续失败多少次后熔断
	OpenTimeout      time.Duration // 熔断后多久进入半开状态
}

// Breaker 熔断器
type Breaker struct {
	mu sync.Mutex

	name     string
	cfg      Config
	state    State
	failures int       // 连续失败次数
	openedAt time.Time // 进入Open状态的时间
}

// New 创建熔断器
func New(name string, cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &Breaker{
		name:  name,
		cfg:   cfg,
		state: StateClosed,
	}
}

// Execute 执行请求
// Open状态直接返回ErrOpenState，不调用fn
func (b *Breaker) Execute(fn func() error) error {
	if err := b.beforeRequest(); err != nil {
		return err
	}

	err := fn()
	b.afterRequest(err == nil)
	return err
}

// State 返回当前状态（会先结算Open→HalfOpen的超时转换）
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked(time.Now())
	return b.state
}

func (b *Breaker) beforeRequest() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refreshLocked(time.Now())
	if b.state == StateOpen {
		return ErrOpenState
	}
	return nil
}

func (b *Breaker) afterRequest(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		b.failures = 0
		b.state = StateClosed
		return
	}

	b.failures++
	// 半开状态下探测失败，立即回到Open
	if b.state == StateHalfOpen || b.failures >= b.cfg.FailureThreshold {
		b.state = StateOpen
		b.openedAt = time.Now()
	}
}

// refreshLocked 结算基于时间的状态转换，调用方必须持有锁
func (b *Breaker) refreshLocked(now time.Time) {
	if b.state == StateOpen && now.Sub(b.openedAt) >= b.cfg.OpenTimeout {
		b.state = StateHalfOpen
	}
}
