package librarian

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Service 馆员领域服务
// 设计说明：
// 1. 密码加密、验证等不属于单个实体的业务逻辑放在领域服务
// 2. 依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. 不处理HTTP请求，Token签发在应用层完成
type Service interface {
	// Register 注册馆员账号
	Register(ctx context.Context, username, password, name string) (*Librarian, error)

	// Login 馆员登录（验证登录名和密码）
	Login(ctx context.Context, username, password string) (*Librarian, error)
}

type service struct {
	repo Repository
}

// NewService 创建馆员服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// usernamePattern 登录名规则：3-32位小写字母/数字/下划线
var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// Register 注册馆员账号
// 业务规则：
// 1. 登录名格式校验（3-32位小写字母/数字/下划线）
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. 密码bcrypt加密（自动加盐，cost=12）
// 4. 登录名唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, username, password, name string) (*Librarian, error) {
	// 1. 登录名格式校验
	if !usernamePattern.MatchString(username) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "登录名必须为3-32位小写字母、数字或下划线")
	}

	// 2. 密码强度校验
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// 3. 姓名校验
	if len([]rune(name)) < 2 || len([]rune(name)) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "姓名长度应为2-50个字符")
	}

	// 4. 密码加密
	// bcrypt自动加盐，相同密码每次哈希结果不同；cost=12平衡安全与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	// 5. 创建实体并持久化
	l := NewLibrarian(username, string(hashedPassword), name)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return l, nil
}

// Login 馆员登录
func (s *service) Login(ctx context.Context, username, password string) (*Librarian, error) {
	// 1. 根据登录名查找
	l, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err // Repository已转换为ErrNotFound
	}

	// 2. 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(l.Password), []byte(password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return l, nil
}

// validatePasswordStrength 密码强度校验
// 规则：8-20位，必须同时包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasDigit {
		return apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
	}

	return nil
}
