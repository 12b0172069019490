package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口，infrastructure层实现（mysql/memory两套）
// 2. 便于Mock测试，不依赖具体数据库实现
// 3. Save承担"新建+更新"：ID为0时插入并回填新ID，否则整体覆盖同ID记录
//   ID分配必须单调递增且并发唯一（MySQL自增 / 内存原子计数器）
type Repository interface {
	// Save 保存图书（ID为0时分配新ID并回填）
	Save(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindAll 返回全部图书
	FindAll(ctx context.Context) ([]*Book, error)
}
