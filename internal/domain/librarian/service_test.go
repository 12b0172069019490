package librarian

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// fakeRepo 内存仓储桩
type fakeRepo struct {
	byUsername map[string]*Librarian
	nextID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUsername: make(map[string]*Librarian)}
}

func (r *fakeRepo) Create(_ context.Context, l *Librarian) error {
	if _, ok := r.byUsername[l.Username]; ok {
		return ErrUsernameDuplicate
	}
	r.nextID++
	l.ID = r.nextID
	r.byUsername[l.Username] = l
	return nil
}

func (r *fakeRepo) FindByUsername(_ context.Context, username string) (*Librarian, error) {
	l, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	return l, nil
}

// TestService_Register 测试馆员注册
func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		l, err := svc.Register(ctx, "ana_lib", "passw0rd123", "Ana García")
		require.NoError(t, err)
		assert.NotZero(t, l.ID)
		assert.NotEqual(t, "passw0rd123", l.Password, "密码必须以哈希形式存储")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(l.Password), []byte("passw0rd123")))
	})

	t.Run("登录名格式非法", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Register(ctx, "Ana!", "passw0rd123", "Ana")
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.CodeOf(err))
	})

	t.Run("弱密码被拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		// 纯字母
		_, err := svc.Register(ctx, "ana_lib", "abcdefgh", "Ana")
		assert.Equal(t, apperrors.ErrCodeWeakPassword, apperrors.CodeOf(err))
		// 过短
		_, err = svc.Register(ctx, "ana_lib", "a1", "Ana")
		assert.Equal(t, apperrors.ErrCodeWeakPassword, apperrors.CodeOf(err))
	})

	t.Run("登录名重复", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Register(ctx, "ana_lib", "passw0rd123", "Ana")
		require.NoError(t, err)
		_, err = svc.Register(ctx, "ana_lib", "passw0rd456", "Otra Ana")
		assert.Equal(t, apperrors.ErrCodeUsernameDuplicate, apperrors.CodeOf(err))
	})
}

// TestService_Login 测试馆员登录
func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	_, err := svc.Register(ctx, "ana_lib", "passw0rd123", "Ana García")
	require.NoError(t, err)

	t.Run("密码正确", func(t *testing.T) {
		l, err := svc.Login(ctx, "ana_lib", "passw0rd123")
		require.NoError(t, err)
		assert.Equal(t, "ana_lib", l.Username)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana_lib", "wrong-pass1")
		assert.Equal(t, apperrors.ErrCodeInvalidPassword, apperrors.CodeOf(err))
	})

	t.Run("账号不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nadie", "passw0rd123")
		assert.Equal(t, apperrors.ErrCodeLibrarianNotFound, apperrors.CodeOf(err))
	})
}
