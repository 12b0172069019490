package dto

// AddBookRequest HTTP图书登记请求
// 说明：分类/介质/业务字段的实质校验在领域层校验链完成，
// binding只拦截明显的格式问题，保证校验错误码统一来自领域层
type AddBookRequest struct {
	Title    string `json:"title" binding:"max=200" example:"Cien años de soledad"`
	Author   string `json:"author" binding:"max=100" example:"Gabriel García Márquez"`
	Category string `json:"category" binding:"max=20" example:"FICCION"`
	Medium   string `json:"medium" binding:"max=20" example:"FISICO"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID           uint   `json:"id" example:"1"`
	Title        string `json:"title" example:"Cien años de soledad"`
	Author       string `json:"author" example:"Gabriel García Márquez"`
	Category     string `json:"category" example:"FICCION"`
	Medium       string `json:"medium" example:"FISICO"`
	Availability string `json:"availability" example:"DISPONIBLE"`
	Description  string `json:"description" example:"Cien años de soledad - Gabriel García Márquez (FICCION, FISICO) - Estado: DISPONIBLE"`
	CreatedAt    string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// BookListResponse HTTP图书列表响应
type BookListResponse struct {
	List  []BookResponse `json:"list"`
	Total int            `json:"total" example:"3"`
}

// LoanBookRequest HTTP借阅请求
type LoanBookRequest struct {
	Borrower string `json:"borrower" binding:"required,max=100" example:"Juan Pérez"`
}

// LoanBookResponse HTTP借阅响应
type LoanBookResponse struct {
	Confirmation string `json:"confirmation"`
}

// SearchBooksRequest HTTP检索请求
// field未指定或未知时按标题检索
type SearchBooksRequest struct {
	Criterion string `form:"criterion" binding:"required,max=100" example:"garcía"`
	Field     string `form:"field" binding:"omitempty,max=20" example:"author"`
}

// ImportBooksRequest HTTP旧系统导入请求
type ImportBooksRequest struct {
	Records []LegacyRecordDTO `json:"records" binding:"required,min=1,dive"`
}

// LegacyRecordDTO 旧系统图书记录（保留旧系统字段命名）
type LegacyRecordDTO struct {
	BookTitle   string `json:"bookTitle" binding:"max=200"`
	BookAuthor  string `json:"bookAuthor" binding:"max=100"`
	BookType    string `json:"bookType" binding:"max=30"`
	IsAvailable bool   `json:"isAvailable"`
}

// ImportBooksResponse HTTP导入结果响应
type ImportBooksResponse struct {
	Imported int                `json:"imported" example:"2"`
	Failed   []ImportFailureDTO `json:"failed"`
}

// ImportFailureDTO 单条导入失败信息
type ImportFailureDTO struct {
	Index  int    `json:"index" example:"2"`
	Title  string `json:"title" example:"X"`
	Reason string `json:"reason"`
}
