package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	applibrarian "github.com/xiebiao/library/internal/application/librarian"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// LibrarianHandler 馆员HTTP处理器
type LibrarianHandler struct {
	registerUseCase *applibrarian.RegisterUseCase
	loginUseCase    *applibrarian.LoginUseCase
	logoutUseCase   *applibrarian.LogoutUseCase
}

// NewLibrarianHandler 创建馆员处理器
func NewLibrarianHandler(
	registerUseCase *applibrarian.RegisterUseCase,
	loginUseCase *applibrarian.LoginUseCase,
	logoutUseCase *applibrarian.LogoutUseCase,
) *LibrarianHandler {
	return &LibrarianHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register 馆员注册
// @Summary      馆员注册
// @Tags         馆员
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response{data=dto.LibrarianResponse}
// @Failure      400 {object} response.Response "登录名已存在或密码强度不足"
// @Router       /api/v1/librarians/register [post]
func (h *LibrarianHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), applibrarian.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LibrarianResponse{
		ID:       result.Librarian.ID,
		Username: result.Librarian.Username,
		Name:     result.Librarian.Name,
	})
}

// Login 馆员登录
// @Summary      馆员登录
// @Tags         馆员
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse}
// @Failure      401 {object} response.Response "登录名或密码错误"
// @Router       /api/v1/librarians/login [post]
func (h *LibrarianHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), applibrarian.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoginResponse{
		Librarian: dto.LibrarianResponse{
			ID:       result.Librarian.ID,
			Username: result.Librarian.Username,
			Name:     result.Librarian.Name,
		},
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

// Logout 馆员登出
// @Summary      馆员登出
// @Description  删除会话并将当前Token拉黑
// @Tags         馆员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/librarians/logout [post]
func (h *LibrarianHandler) Logout(c *gin.Context) {
	librarianID := middleware.GetLibrarianID(c)

	// 认证中间件已校验过Header格式,这里取Token原文用于拉黑
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.logoutUseCase.Execute(c.Request.Context(), librarianID, token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "已登出"})
}
