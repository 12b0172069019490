package librarian

import (
	"context"

	"github.com/xiebiao/library/pkg/jwt"
)

// LogoutUseCase 馆员登出用例
// 设计说明:
// 1. 删除Redis中的会话
// 2. 把Access Token加入黑名单(JWT无状态,不拉黑则过期前仍然有效)
// 3. 黑名单TTL取Token有效期:Token自然过期后黑名单条目随之失效
type LogoutUseCase struct {
	sessionStore SessionStore
	jwtManager   *jwt.Manager
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore SessionStore, jwtManager *jwt.Manager) *LogoutUseCase {
	return &LogoutUseCase{
		sessionStore: sessionStore,
		jwtManager:   jwtManager,
	}
}

// Execute 执行登出
// token是本次请求携带的Access Token原文
func (uc *LogoutUseCase) Execute(ctx context.Context, librarianID uint, token string) error {
	// 未启用Redis时没有会话可清理,登出只是客户端丢弃Token
	if uc.sessionStore == nil {
		return nil
	}

	// 1. 删除会话
	if err := uc.sessionStore.DeleteSession(ctx, librarianID); err != nil {
		return err
	}

	// 2. 拉黑Token(防止Token在过期前继续使用)
	return uc.sessionStore.AddToBlacklist(ctx, token, uc.jwtManager.Expire())
}
