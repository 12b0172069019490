package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookListKey 馆藏全量列表缓存Key
const bookListKey = "books:list"

// BookCache 馆藏列表缓存(Cache-Aside)
// 设计说明：
// 1. 全量列表整体缓存为一个JSON值，写操作(登记/借出/归还)后整体失效
// 2. 未命中返回(nil, nil)，由调用方回源并回填
type BookCache struct {
	client *redis.Client
}

// NewBookCache 创建馆藏列表缓存
func NewBookCache(client *redis.Client) *BookCache {
	return &BookCache{client: client}
}

// GetList 读取缓存的馆藏列表，未命中返回(nil, nil)
func (c *BookCache) GetList(ctx context.Context) ([]*book.Book, error) {
	data, err := c.client.Get(ctx, bookListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "读取列表缓存失败")
	}

	var books []*book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		// 缓存内容损坏时按未命中处理并清除
		_ = c.client.Del(ctx, bookListKey).Err()
		return nil, nil
	}
	return books, nil
}

// SetList 回填馆藏列表缓存
func (c *BookCache) SetList(ctx context.Context, books []*book.Book, ttl time.Duration) error {
	data, err := json.Marshal(books)
	if err != nil {
		return apperrors.Wrap(err, "序列化列表缓存失败")
	}

	if err := c.client.Set(ctx, bookListKey, data, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入列表缓存失败")
	}
	return nil
}

// Invalidate 失效馆藏列表缓存
func (c *BookCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, bookListKey).Err(); err != nil {
		return apperrors.Wrap(err, "失效列表缓存失败")
	}
	return nil
}
