package metrics

import "testing"

// TestInit_Idempotent 测试重复初始化不会panic
// Prometheus同名指标重复注册会panic，Init必须幂等
func TestInit_Idempotent(t *testing.T) {
	Init()
	Init() // 第二次调用不应panic

	if LoansTotal == nil {
		t.Fatal("Init后LoansTotal不应为nil")
	}
	if HTTPRequestsTotal == nil {
		t.Fatal("Init后HTTPRequestsTotal不应为nil")
	}
}

// TestCounters_Usable 测试指标可正常递增
func TestCounters_Usable(t *testing.T) {
	Init()

	// 递增不panic即可（数值断言依赖注册表状态，意义不大）
	LoansTotal.Inc()
	ReturnsTotal.Inc()
	RejectedTransitionsTotal.Inc()
	ValidationFailuresTotal.WithLabelValues("title").Inc()
	HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/books", "200").Inc()
}
