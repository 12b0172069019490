package dto

// RegisterRequest HTTP馆员注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32" example:"bibliotecario"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"libros2024"`
	Name     string `json:"name" binding:"required,min=2,max=50" example:"María López"`
}

// LibrarianResponse HTTP馆员信息响应
type LibrarianResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"bibliotecario"`
	Name     string `json:"name" example:"María López"`
}

// LoginRequest HTTP馆员登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"bibliotecario"`
	Password string `json:"password" binding:"required" example:"libros2024"`
}

// LoginResponse HTTP馆员登录响应
type LoginResponse struct {
	Librarian LibrarianResponse `json:"librarian"`
	Token     string            `json:"token"`
	ExpiresIn int64             `json:"expires_in" example:"7200"`
}
