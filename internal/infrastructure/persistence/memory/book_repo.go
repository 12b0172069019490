// Package memory 提供进程内仓储实现
// 用于本地开发与测试(database.driver: memory)，无需外部依赖即可启动服务
package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/library/internal/domain/book"
)

// bookRepository 图书仓储实现(进程内)
// 设计说明:
// 1. map存值而非指针，读写都做值拷贝，调用方修改实体不会越过Save生效
// 2. 自增ID由仓储自身维护，与MySQL自增语义一致
type bookRepository struct {
	mu     sync.RWMutex
	books  map[uint]book.Book
	nextID uint
}

// NewBookRepository 创建进程内图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{books: make(map[uint]book.Book)}
}

// Save 保存图书，ID为0时分配自增ID
func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == 0 {
		r.nextID++
		b.ID = r.nextID
	}
	r.books[b.ID] = *b
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := b
	return &cp, nil
}

// FindAll 返回全部图书(按入库顺序)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*book.Book, 0, len(r.books))
	for id := uint(1); id <= r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			cp := b
			out = append(out, &cp)
		}
	}
	return out, nil
}
