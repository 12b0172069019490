package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	addBookUseCase     *appbook.AddBookUseCase
	loanBookUseCase    *appbook.LoanBookUseCase
	returnBookUseCase  *appbook.ReturnBookUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	importBooksUseCase *appbook.ImportBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appbook.AddBookUseCase,
	loanBookUseCase *appbook.LoanBookUseCase,
	returnBookUseCase *appbook.ReturnBookUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	importBooksUseCase *appbook.ImportBooksUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:     addBookUseCase,
		loanBookUseCase:    loanBookUseCase,
		returnBookUseCase:  returnBookUseCase,
		searchBooksUseCase: searchBooksUseCase,
		listBooksUseCase:   listBooksUseCase,
		importBooksUseCase: importBooksUseCase,
	}
}

// AddBook 登记新书
// @Summary      登记新书
// @Description  馆员登记一本新书入馆藏
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      409 {object} response.Response "校验失败"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:    req.Title,
		Author:   req.Author,
		Category: req.Category,
		Medium:   req.Medium,
	})

	if err != nil {
		recordValidationFailure(err)
		response.Error(c, err)
		return
	}

	metrics.BooksAddedTotal.Inc()
	response.Success(c, toBookResponse(result))
}

// LoanBook 借出图书
// @Summary      借出图书
// @Description  将指定图书借给借阅人，仅"可借阅"状态允许
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.LoanBookRequest true "借阅人"
// @Success      200 {object} response.Response{data=dto.LoanBookResponse}
// @Failure      400 {object} response.Response "图书已借出"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/loan [post]
func (h *BookHandler) LoanBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req dto.LoanBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.loanBookUseCase.Execute(c.Request.Context(), appbook.LoanBookRequest{
		BookID:   id,
		Borrower: req.Borrower,
	})

	if err != nil {
		recordRejectedTransition(err)
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoanBookResponse{Confirmation: result.Confirmation})
}

// ReturnBook 归还图书
// @Summary      归还图书
// @Description  归还指定图书，仅"借出"状态允许
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.LoanBookResponse}
// @Failure      400 {object} response.Response "图书未借出"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/return [post]
func (h *BookHandler) ReturnBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	result, err := h.returnBookUseCase.Execute(c.Request.Context(), appbook.ReturnBookRequest{
		BookID: id,
	})

	if err != nil {
		recordRejectedTransition(err)
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoanBookResponse{Confirmation: result.Confirmation})
}

// ListBooks 馆藏列表
// @Summary      馆藏列表
// @Description  返回全部馆藏图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookListResponse(result))
}

// SearchBooks 检索馆藏
// @Summary      检索馆藏
// @Description  按标题/作者/分类检索，大小写不敏感子串匹配
// @Tags         图书
// @Produce      json
// @Param        criterion query string true "检索关键词"
// @Param        field query string false "检索维度(title/author/category)，默认title"
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Router       /api/v1/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appbook.SearchBooksRequest{
		Criterion: req.Criterion,
		Field:     req.Field,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookListResponse(result))
}

// ImportBooks 旧系统馆藏导入
// @Summary      旧系统馆藏导入
// @Description  批量导入旧系统图书记录，单条失败不中断整批
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ImportBooksRequest true "旧系统记录"
// @Success      200 {object} response.Response{data=dto.ImportBooksResponse}
// @Router       /api/v1/books/import [post]
func (h *BookHandler) ImportBooks(c *gin.Context) {
	var req dto.ImportBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	records := make([]appbook.LegacyRecord, len(req.Records))
	for i, r := range req.Records {
		records[i] = appbook.LegacyRecord{
			BookTitle:   r.BookTitle,
			BookAuthor:  r.BookAuthor,
			BookType:    r.BookType,
			IsAvailable: r.IsAvailable,
		}
	}

	result, err := h.importBooksUseCase.Execute(c.Request.Context(), appbook.ImportBooksRequest{
		Records: records,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Imported > 0 {
		metrics.BooksAddedTotal.Add(float64(result.Imported))
	}

	failed := make([]dto.ImportFailureDTO, len(result.Failed))
	for i, f := range result.Failed {
		failed[i] = dto.ImportFailureDTO{Index: f.Index, Title: f.Title, Reason: f.Reason}
	}

	response.Success(c, &dto.ImportBooksResponse{
		Imported: result.Imported,
		Failed:   failed,
	})
}

// parseBookID 解析路径中的图书ID
func parseBookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的图书ID")
		return 0, false
	}
	return uint(id), true
}

// recordValidationFailure 登记失败时按校验维度打点
func recordValidationFailure(err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeInvalidTitle:
		metrics.ValidationFailuresTotal.WithLabelValues("title").Inc()
	case apperrors.ErrCodeInvalidAuthor:
		metrics.ValidationFailuresTotal.WithLabelValues("author").Inc()
	case apperrors.ErrCodeMissingRequiredField:
		metrics.ValidationFailuresTotal.WithLabelValues("required_field").Inc()
	}
}

// recordRejectedTransition 非法状态流转打点
func recordRejectedTransition(err error) {
	if apperrors.CodeOf(err) == apperrors.ErrCodeInvalidStateTransition {
		metrics.RejectedTransitionsTotal.Inc()
	}
}

func toBookResponse(item *appbook.BookItem) *dto.BookResponse {
	return &dto.BookResponse{
		ID:           item.ID,
		Title:        item.Title,
		Author:       item.Author,
		Category:     item.Category,
		Medium:       item.Medium,
		Availability: item.Availability,
		Description:  item.Description,
		CreatedAt:    item.CreatedAt,
	}
}

func toBookListResponse(result *appbook.BookListResponse) *dto.BookListResponse {
	list := make([]dto.BookResponse, len(result.List))
	for i := range result.List {
		list[i] = *toBookResponse(&result.List[i])
	}
	return &dto.BookListResponse{List: list, Total: result.Total}
}
