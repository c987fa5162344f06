// Package metrics 基于Prometheus的指标收集
//
// 指标设计：
// - http_requests_total / http_request_duration_seconds: 请求量与耗时
// - orders_created_total / order_amount_fen: 下单量与订单金额分布
// - cart_items_added_total: 加购次数
// - category_cache_entries: 分类缓存当前条目数
//
// 通过/metrics端点暴露，由Prometheus Server定期抓取
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数（按方法、路由、状态码）
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时分布
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时(秒)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// OrdersCreatedTotal 成功创建的订单总数
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "成功创建的订单总数",
		},
	)

	// OrderAmountFen 订单金额分布(分)
	OrderAmountFen = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_amount_fen",
			Help:    "订单金额分布(分)",
			Buckets: []float64{1000, 5000, 10000, 50000, 100000, 500000},
		},
	)

	// CartItemsAddedTotal 加购操作总数
	CartItemsAddedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_items_added_total",
			Help: "加入购物车操作总数",
		},
	)

	// CategoryCacheEntries 分类缓存当前条目数
	CategoryCacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "category_cache_entries",
			Help: "分类缓存当前条目数",
		},
	)
)

// Register 注册所有指标
// 注意：重复注册会panic，只在启动时调用一次
func Register() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		OrdersCreatedTotal,
		OrderAmountFen,
		CartItemsAddedTotal,
		CategoryCacheEntries,
	)
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware HTTP指标采集中间件
// 使用c.FullPath()而非c.Request.URL.Path，避免/books/123这类路径
// 把标签基数撑爆（未匹配路由FullPath为空，归入"unmatched"）
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
