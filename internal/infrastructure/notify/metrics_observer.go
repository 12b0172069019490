package notify

import (
	"strings"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/metrics"
)

// MetricsObserver 借阅事件打点监听者
type MetricsObserver struct{}

// NewMetricsObserver 创建打点监听者
func NewMetricsObserver() *MetricsObserver {
	metrics.Init()
	return &MetricsObserver{}
}

// Update 按事件种类累加计数器
func (o *MetricsObserver) Update(description, event string) {
	switch {
	case strings.HasPrefix(event, book.EventLoaned):
		metrics.LoansTotal.Inc()
	case strings.HasPrefix(event, book.EventReturned):
		metrics.ReturnsTotal.Inc()
	}
}
