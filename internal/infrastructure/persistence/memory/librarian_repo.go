package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/library/internal/domain/librarian"
)

// librarianRepository 馆员仓储实现(进程内)
type librarianRepository struct {
	mu         sync.RWMutex
	byID       map[uint]librarian.Librarian
	byUsername map[string]uint
	nextID     uint
}

// NewLibrarianRepository 创建进程内馆员仓储
func NewLibrarianRepository() librarian.Repository {
	return &librarianRepository{
		byID:       make(map[uint]librarian.Librarian),
		byUsername: make(map[string]uint),
	}
}

// Create 创建馆员，登录名重复时返回ErrUsernameDuplicate
func (r *librarianRepository) Create(ctx context.Context, l *librarian.Librarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[l.Username]; exists {
		return librarian.ErrUsernameDuplicate
	}

	r.nextID++
	l.ID = r.nextID
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	r.byID[l.ID] = *l
	r.byUsername[l.Username] = l.ID
	return nil
}

// FindByUsername 根据登录名查找馆员
func (r *librarianRepository) FindByUsername(ctx context.Context, username string) (*librarian.Librarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, librarian.ErrNotFound
	}
	l := r.byID[id]
	return &l, nil
}
