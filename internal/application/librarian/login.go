package librarian

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/librarian"
	"github.com/xiebiao/library/pkg/jwt"
)

// SessionStore 馆员会话存储（redis.SessionStore实现该接口）
// 应用层只依赖接口，测试可注入内存实现
type SessionStore interface {
	SaveSession(ctx context.Context, librarianID uint, sessionData map[string]interface{}, ttl time.Duration) error
	DeleteSession(ctx context.Context, librarianID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
}

// LoginUseCase 馆员登录用例
// 设计说明:
// 1. 验证登录名密码
// 2. 生成JWT Token
// 3. 保存会话到Redis(登出时删除,并把Token拉黑)
type LoginUseCase struct {
	librarianService librarian.Service
	jwtManager       *jwt.Manager
	sessionStore     SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	librarianService librarian.Service,
	jwtManager *jwt.Manager,
	sessionStore SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		librarianService: librarianService,
		jwtManager:       jwtManager,
		sessionStore:     sessionStore,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	Librarian LibrarianInfo `json:"librarian"`
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"` // Token有效期（秒）
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证登录名密码（调用领域服务）
	l, err := uc.librarianService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 生成JWT Token
	token, err := uc.jwtManager.GenerateToken(l.ID, l.Username)
	if err != nil {
		return nil, err
	}

	// 3. 保存会话（失败不影响登录，认证中间件会放行无会话记录的有效Token）
	if uc.sessionStore != nil {
		session := map[string]interface{}{
			"librarian_id": l.ID,
			"username":     l.Username,
			"login_at":     time.Now().Unix(),
		}
		_ = uc.sessionStore.SaveSession(ctx, l.ID, session, uc.jwtManager.Expire())
	}

	return &LoginResponse{
		Librarian: LibrarianInfo{
			ID:       l.ID,
			Username: l.Username,
			Name:     l.Name,
		},
		Token:     token,
		ExpiresIn: int64(uc.jwtManager.Expire().Seconds()),
	}, nil
}
