package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Token
// 2. 验证Token有效性
// 3. 检查Token黑名单（sessionStore为nil时跳过，适用于无Redis的本地开发）
// 4. 将馆员信息注入Context
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从Header提取Token
		// 格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeUnauthorized, "请先登录")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token格式错误")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 2. 检查Token是否在黑名单中（馆员已登出或Token被强制失效）
		if m.sessionStore != nil {
			isBlacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
			if err != nil {
				response.ErrorWithCode(c, apperrors.ErrCodeInternal, "验证Token失败")
				c.Abort()
				return
			}
			if isBlacklisted {
				response.ErrorWithCode(c, apperrors.ErrCodeTokenExpired, "Token已失效，请重新登录")
				c.Abort()
				return
			}
		}

		// 3. 验证Token并解析Claims
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err) // 自动处理ErrTokenExpired、ErrInvalidToken
			c.Abort()
			return
		}

		// 4. 将馆员信息注入到Context（后续Handler可以使用）
		c.Set("librarian_id", claims.LibrarianID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// GetLibrarianID 从Context获取当前登录馆员ID（未登录返回0）
func GetLibrarianID(c *gin.Context) uint {
	if id, exists := c.Get("librarian_id"); exists {
		if lid, ok := id.(uint); ok {
			return lid
		}
	}
	return 0
}

// GetUsername 从Context获取当前登录馆员登录名
func GetUsername(c *gin.Context) string {
	if username, exists := c.Get("username"); exists {
		if name, ok := username.(string); ok {
			return name
		}
	}
	return ""
}
