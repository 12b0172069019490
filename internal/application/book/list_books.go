package book

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

// ListBooksUseCase 馆藏列表查询用例
// 设计说明:
// 1. Cache-Aside: 先查Redis, 未命中回源仓储并回填
// 2. 缓存读写失败直接回源, 不影响查询可用性
type ListBooksUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
	cacheTTL    time.Duration
}

// NewListBooksUseCase 创建馆藏列表查询用例
func NewListBooksUseCase(bookService book.Service, cache *redis.BookCache, cacheTTL time.Duration) *ListBooksUseCase {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ListBooksUseCase{
		bookService: bookService,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// BookItem 图书条目DTO
type BookItem struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Category     string `json:"category"`
	Medium       string `json:"medium"`
	Availability string `json:"availability"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
}

// BookListResponse 列表查询响应DTO
type BookListResponse struct {
	List  []BookItem `json:"list"`
	Total int        `json:"total"`
}

// Execute 执行馆藏列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*BookListResponse, error) {
	// 1. 尝试读缓存
	if uc.cache != nil {
		if books, err := uc.cache.GetList(ctx); err == nil && books != nil {
			return toListResponse(books), nil
		}
	}

	// 2. 回源仓储
	books, err := uc.bookService.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存(失败不影响查询)
	if uc.cache != nil {
		_ = uc.cache.SetList(ctx, books, uc.cacheTTL)
	}

	return toListResponse(books), nil
}

func toListResponse(books []*book.Book) *BookListResponse {
	list := make([]BookItem, len(books))
	for i, b := range books {
		list[i] = toBookItem(b)
	}
	return &BookListResponse{List: list, Total: len(list)}
}

func toBookItem(b *book.Book) BookItem {
	return BookItem{
		ID:           b.ID,
		Title:        b.Title,
		Author:       b.Author,
		Category:     string(b.Category),
		Medium:       string(b.Medium),
		Availability: string(b.Availability),
		Description:  b.Description(),
		CreatedAt:    b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
