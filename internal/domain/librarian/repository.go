package librarian

import (
	"context"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 馆员领域错误定义
var (
	// ErrNotFound 馆员账号不存在
	ErrNotFound = apperrors.New(apperrors.ErrCodeLibrarianNotFound, "馆员账号不存在")

	// ErrUsernameDuplicate 登录名已被占用
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "登录名已被占用")
)

// Repository 馆员仓储接口
// 由domain层定义，infrastructure层实现
type Repository interface {
	// Create 创建馆员（登录名重复时返回ErrUsernameDuplicate）
	Create(ctx context.Context, l *Librarian) error

	// FindByUsername 根据登录名查找馆员
	FindByUsername(ctx context.Context, username string) (*Librarian, error)
}
