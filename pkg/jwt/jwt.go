package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 馆员登录后签发Access Token，后续写操作（上架/借阅/归还）凭Token鉴权
// 2. Token本身无状态，配合Redis会话记录实现服务端吊销（见redis.SessionStore）
type Manager struct {
	secret string        // JWT签名密钥
	expire time.Duration // Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, expire time.Duration) *Manager {
	return &Manager{
		secret: secret,
		expire: expire,
	}
}

// Claims 自定义JWT Claims
// 学习要点：嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
type Claims struct {
	LibrarianID uint   `json:"librarian_id"`
	Username    string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken 生成Token
func (m *Manager) GenerateToken(librarianID uint, username string) (string, error) {
	now := time.Now()

	claims := Claims{
		LibrarianID: librarianID,
		Username:    username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "library",
			Subject:   fmt.Sprintf("%d", librarianID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "生成Token失败")
	}
	return signed, nil
}

// ParseToken 验证并解析Token
// 错误分类：
// - 过期 → ErrTokenExpired（客户端应重新登录）
// - 其他（签名错误、格式错误）→ ErrInvalidToken
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// 校验签名算法，防止alg=none攻击
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名算法: %v", t.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// Expire 返回Token有效期（登录响应中告知客户端）
func (m *Manager) Expire() time.Duration {
	return m.expire
}
