package notify

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/mq"
)

// LoanEvent 发往消息队列的借阅事件
type LoanEvent struct {
	Event       string    `json:"event"`       // loaned | returned
	Description string    `json:"description"` // 图书展示描述（含借阅信息）
	Detail      string    `json:"detail"`      // 事件描述文本
	OccurredAt  time.Time `json:"occurred_at"`
}

// MQObserver 借阅事件消息队列监听者
// 设计说明：
// 1. 通知回调是同步的，发布设置短超时，避免MQ故障拖慢借阅请求
// 2. 发布失败只记日志：借阅/归还已经完成，事件丢失可由下游对账补偿
type MQObserver struct {
	publisher *mq.Publisher
	log       *zap.Logger
}

// NewMQObserver 创建消息队列监听者
func NewMQObserver(publisher *mq.Publisher, log *zap.Logger) *MQObserver {
	return &MQObserver{
		publisher: publisher,
		log:       log,
	}
}

// Update 发布借阅事件
func (o *MQObserver) Update(description, event string) {
	kind, routingKey := classify(event)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	msg := LoanEvent{
		Event:       kind,
		Description: description,
		Detail:      event,
		OccurredAt:  time.Now(),
	}

	if err := o.publisher.Publish(ctx, routingKey, msg); err != nil {
		o.log.Error("发布借阅事件失败",
			zap.String("routing_key", routingKey),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func classify(event string) (kind, routingKey string) {
	if strings.HasPrefix(event, book.EventReturned) {
		return "returned", "book.returned"
	}
	return "loaned", "book.loaned"
}
