// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// - Counter（计数器）：只增不减的累计值（请求总数、借阅总数）
// - Gauge（仪表盘）：可增可减的瞬时值（处理中的请求数）
// - Histogram（直方图）：观测值的分布（请求耗时，自动算P50/P90/P99）
//
// 使用方式：
//  1. main中调用metrics.Init()注册指标
//  2. 路由上挂载promhttp.Handler()暴露/metrics端点
//  3. 业务代码中递增对应指标
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 图书目录业务指标

	// BooksAddedTotal 图书入库总数（Counter）
	BooksAddedTotal prometheus.Counter

	// ValidationFailuresTotal 校验失败总数（Counter）
	// 标签：kind（title/author/required_field）
	ValidationFailuresTotal *prometheus.CounterVec

	// LoansTotal 借阅成功总数（Counter）
	LoansTotal prometheus.Counter

	// ReturnsTotal 归还成功总数（Counter）
	ReturnsTotal prometheus.Counter

	// RejectedTransitionsTotal 被拒绝的状态流转总数（Counter）
	// 例如：重复借阅、归还未借出的图书
	RejectedTransitionsTotal prometheus.Counter
)

// Init 注册所有指标
// 幂等：重复调用只注册一次（测试中多次Init不会panic）
func Init() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "library_http_request_duration_seconds",
		Help:    "HTTP请求耗时分布",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
	}, []string{"method", "path"})

	HTTPRequestsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "library_http_requests_in_progress",
		Help: "正在处理的HTTP请求数",
	})

	BooksAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_books_added_total",
		Help: "图书入库总数",
	})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "library_validation_failures_total",
		Help: "图书校验失败总数",
	}, []string{"kind"})

	LoansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_loans_total",
		Help: "借阅成功总数",
	})

	ReturnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_returns_total",
		Help: "归还成功总数",
	})

	RejectedTransitionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "library_rejected_transitions_total",
		Help: "被拒绝的借阅状态流转总数",
	})
}
