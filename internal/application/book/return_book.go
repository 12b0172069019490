package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

// ReturnBookUseCase 归还用例
type ReturnBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewReturnBookUseCase 创建归还用例
func NewReturnBookUseCase(bookService book.Service, cache *redis.BookCache) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// ReturnBookRequest 归还请求DTO
type ReturnBookRequest struct {
	BookID uint
}

// ReturnBookResponse 归还响应DTO
type ReturnBookResponse struct {
	Confirmation string `json:"confirmation"`
}

// Execute 执行归还
func (uc *ReturnBookUseCase) Execute(ctx context.Context, req ReturnBookRequest) (*ReturnBookResponse, error) {
	confirmation, err := uc.bookService.ReturnBook(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}

	return &ReturnBookResponse{Confirmation: confirmation}, nil
}
