package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/librarian"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// librarianRepository 馆员仓储实现(MySQL)
type librarianRepository struct {
	db *gorm.DB
}

// NewLibrarianRepository 创建馆员仓储
func NewLibrarianRepository(db *gorm.DB) librarian.Repository {
	return &librarianRepository{db: db}
}

// Create 创建馆员
func (r *librarianRepository) Create(ctx context.Context, l *librarian.Librarian) error {
	model := &LibrarianModel{
		Username: l.Username,
		Password: l.Password,
		Name:     l.Name,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 唯一索引冲突 → 登录名已存在
		if isDuplicateError(err) {
			return librarian.ErrUsernameDuplicate
		}
		return apperrors.Wrap(err, "创建馆员失败")
	}

	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByUsername 根据登录名查找馆员
func (r *librarianRepository) FindByUsername(ctx context.Context, username string) (*librarian.Librarian, error) {
	var model LibrarianModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, librarian.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "查询馆员失败")
	}

	return &librarian.Librarian{
		ID:        model.ID,
		Username:  model.Username,
		Password:  model.Password,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
