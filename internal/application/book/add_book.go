package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

// AddBookUseCase 图书登记用例
// 设计说明:
// 1. 接收原始字符串入参, 由应用层负责枚举解析
// 2. 领域层校验链负责业务校验(标题/作者/必填项)
// 3. 登记成功后失效列表缓存, 保证读取一致性
type AddBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewAddBookUseCase 创建图书登记用例
func NewAddBookUseCase(bookService book.Service, cache *redis.BookCache) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// AddBookRequest 图书登记请求DTO
type AddBookRequest struct {
	Title    string
	Author   string
	Category string // FICCION / NOFICCION
	Medium   string // FISICO / DIGITAL
}

// Execute 执行图书登记
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookItem, error) {
	// 1. 解析枚举(未知取值解析为空, 由必填项校验器报告)
	category := book.ParseCategory(req.Category)
	medium := book.ParseMedium(req.Medium)

	// 2. 调用领域服务(内部执行校验链并持久化)
	b, err := uc.bookService.AddBook(ctx, req.Title, req.Author, category, medium)
	if err != nil {
		return nil, err
	}

	// 3. 失效列表缓存(失败不影响登记结果)
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}

	item := toBookItem(b)
	return &item, nil
}
