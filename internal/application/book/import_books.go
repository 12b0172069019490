package book

import (
	"context"
	"strings"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

// ImportBooksUseCase 旧系统馆藏导入用例
// 设计说明:
// 1. 适配器模式: 旧系统记录字段命名与类型体系不同, 在此翻译为领域模型
// 2. 逐条导入, 单条失败不中断整批, 失败原因在结果中逐条报告
// 3. 旧系统只记录"是否在馆", 不在馆的记录导入后通过状态机置为借出
type ImportBooksUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewImportBooksUseCase 创建馆藏导入用例
func NewImportBooksUseCase(bookService book.Service, cache *redis.BookCache) *ImportBooksUseCase {
	return &ImportBooksUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// LegacyRecord 旧系统图书记录
type LegacyRecord struct {
	BookTitle   string `json:"bookTitle"`
	BookAuthor  string `json:"bookAuthor"`
	BookType    string `json:"bookType"`
	IsAvailable bool   `json:"isAvailable"`
}

// ImportBooksRequest 导入请求DTO
type ImportBooksRequest struct {
	Records []LegacyRecord
}

// ImportFailure 单条导入失败信息
type ImportFailure struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ImportBooksResponse 导入结果DTO
type ImportBooksResponse struct {
	Imported int             `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

// legacyBorrower 旧系统未记录借阅人, 导入的在借记录统一使用该占位
const legacyBorrower = "旧系统迁移"

// Execute 执行馆藏导入
func (uc *ImportBooksUseCase) Execute(ctx context.Context, req ImportBooksRequest) (*ImportBooksResponse, error) {
	resp := &ImportBooksResponse{}

	for i, rec := range req.Records {
		category := translateLegacyType(rec.BookType)

		// 旧系统只有实体馆藏
		b, err := uc.bookService.AddBook(ctx, rec.BookTitle, rec.BookAuthor, category, book.MediumPhysical)
		if err != nil {
			resp.Failed = append(resp.Failed, ImportFailure{
				Index:  i,
				Title:  rec.BookTitle,
				Reason: err.Error(),
			})
			continue
		}

		if !rec.IsAvailable {
			if _, err := uc.bookService.LoanBook(ctx, b.ID, legacyBorrower); err != nil {
				resp.Failed = append(resp.Failed, ImportFailure{
					Index:  i,
					Title:  rec.BookTitle,
					Reason: err.Error(),
				})
				continue
			}
		}

		resp.Imported++
	}

	if resp.Imported > 0 && uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}

	return resp, nil
}

// translateLegacyType 翻译旧系统图书类型
// 旧系统使用英文类型名, 未知类型解析为空, 由校验链报告必填项缺失
func translateLegacyType(bookType string) book.Category {
	switch strings.ToUpper(strings.TrimSpace(bookType)) {
	case "FICTION":
		return book.CategoryFiction
	case "NONFICTION", "NON-FICTION", "NON_FICTION":
		return book.CategoryNonFiction
	default:
		return book.ParseCategory(bookType)
	}
}
