package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// SearchBooksUseCase 馆藏检索用例
// 设计说明:
// 1. field指定检索维度(title/author/category), 未知维度回退到标题检索
// 2. 检索结果不走缓存: 条件组合多, 命中率低
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建馆藏检索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 检索请求DTO
type SearchBooksRequest struct {
	Criterion string // 检索关键词
	Field     string // 检索维度: title / author / category
}

// Execute 执行馆藏检索
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*BookListResponse, error) {
	books, err := uc.bookService.Search(ctx, req.Criterion, req.Field)
	if err != nil {
		return nil, err
	}
	return toListResponse(books), nil
}
