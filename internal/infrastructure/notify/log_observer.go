// Package notify 提供借阅事件的基础设施监听者实现
// 所有监听者遵循同一约定：通知回调不返回错误，失败自行记录，
// 不影响状态流转结果，也不影响后续监听者收到通知
package notify

import (
	"go.uber.org/zap"
)

// LogObserver 借阅事件日志监听者
// 对应历史系统中打印通知的监听者，这里替换为结构化日志
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver 创建日志监听者
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// Update 记录借阅事件
func (o *LogObserver) Update(description, event string) {
	o.log.Info("借阅事件",
		zap.String("event", event),
		zap.String("book", description),
	)
}
