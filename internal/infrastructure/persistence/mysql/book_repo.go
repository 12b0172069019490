package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. Save既处理新增(ID为0)也处理更新(整行覆盖)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Save 保存图书
// ID为0时插入并回填自增ID，否则整行覆盖
func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if b.ID == 0 {
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return apperrors.Wrap(err, "创建图书失败")
		}
		b.ID = model.ID
		b.CreatedAt = model.CreatedAt
		b.UpdatedAt = model.UpdatedAt
		return nil
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindAll 返回全部图书(按入库顺序)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:           b.ID,
		Title:        b.Title,
		Author:       b.Author,
		Category:     string(b.Category),
		Medium:       string(b.Medium),
		Availability: string(b.Availability),
		Description:  b.Description(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:           m.ID,
		Title:        m.Title,
		Author:       m.Author,
		Category:     book.Category(m.Category),
		Medium:       book.Medium(m.Medium),
		Availability: book.Availability(m.Availability),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
