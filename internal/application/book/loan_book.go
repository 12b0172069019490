package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

// LoanBookUseCase 借阅用例
// 设计说明:
// 1. 状态迁移由领域层保证(仅"可借阅"允许借出)
// 2. 借出成功后失效列表缓存, 列表中的可借状态立即可见
type LoanBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewLoanBookUseCase 创建借阅用例
func NewLoanBookUseCase(bookService book.Service, cache *redis.BookCache) *LoanBookUseCase {
	return &LoanBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// LoanBookRequest 借阅请求DTO
type LoanBookRequest struct {
	BookID   uint
	Borrower string
}

// LoanBookResponse 借阅响应DTO
type LoanBookResponse struct {
	Confirmation string `json:"confirmation"`
}

// Execute 执行借阅
func (uc *LoanBookUseCase) Execute(ctx context.Context, req LoanBookRequest) (*LoanBookResponse, error) {
	confirmation, err := uc.bookService.LoanBook(ctx, req.BookID, req.Borrower)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}

	return &LoanBookResponse{Confirmation: confirmation}, nil
}
