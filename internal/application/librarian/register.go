package librarian

import (
	"context"

	"github.com/xiebiao/library/internal/domain/librarian"
)

// RegisterUseCase 馆员注册用例
type RegisterUseCase struct {
	librarianService librarian.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(librarianService librarian.Service) *RegisterUseCase {
	return &RegisterUseCase{librarianService: librarianService}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Username string
	Password string
	Name     string
}

// RegisterResponse 注册响应DTO
type RegisterResponse struct {
	Librarian LibrarianInfo `json:"librarian"`
}

// LibrarianInfo 馆员信息DTO
type LibrarianInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	l, err := uc.librarianService.Register(ctx, req.Username, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		Librarian: LibrarianInfo{
			ID:       l.ID,
			Username: l.Username,
			Name:     l.Name,
		},
	}, nil
}
