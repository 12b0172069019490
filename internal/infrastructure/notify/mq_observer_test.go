package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		event      string
		kind       string
		routingKey string
	}{
		{"借出事件", "图书已借出，借阅人: Juan", "loaned", "book.loaned"},
		{"归还事件", "图书已归还，借阅人: Juan", "returned", "book.returned"},
		{"未知文本按借出处理", "其他事件", "loaned", "book.loaned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, routingKey := classify(tt.event)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.routingKey, routingKey)
		})
	}
}
