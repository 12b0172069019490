package librarian

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/xiebiao/library/internal/domain/librarian"
	"github.com/xiebiao/library/pkg/jwt"
)

// fakeSessionStore 记录调用的会话存储
type fakeSessionStore struct {
	saved       map[uint]map[string]interface{}
	deleted     []uint
	blacklisted map[string]time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		saved:       make(map[uint]map[string]interface{}),
		blacklisted: make(map[string]time.Duration),
	}
}

func (s *fakeSessionStore) SaveSession(ctx context.Context, librarianID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	s.saved[librarianID] = sessionData
	return nil
}

func (s *fakeSessionStore) DeleteSession(ctx context.Context, librarianID uint) error {
	s.deleted = append(s.deleted, librarianID)
	delete(s.saved, librarianID)
	return nil
}

func (s *fakeSessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	s.blacklisted[token] = ttl
	return nil
}

func TestLogout_DeletesSessionAndBlacklistsToken(t *testing.T) {
	store := newFakeSessionStore()
	jwtManager := jwt.NewManager("test-secret", 2*time.Hour)
	ctx := context.Background()

	// 先有登录会话
	require.NoError(t, store.SaveSession(ctx, 7, map[string]interface{}{"username": "bibliotecario"}, 2*time.Hour))

	uc := NewLogoutUseCase(store, jwtManager)
	require.NoError(t, uc.Execute(ctx, 7, "token-abc"))

	// 会话已删除
	assert.Equal(t, []uint{7}, store.deleted)
	assert.NotContains(t, store.saved, uint(7))

	// Token已拉黑, TTL等于Token有效期
	ttl, ok := store.blacklisted["token-abc"]
	require.True(t, ok, "Token应被加入黑名单")
	assert.Equal(t, 2*time.Hour, ttl)
}

func TestLogout_NoSessionStore(t *testing.T) {
	uc := NewLogoutUseCase(nil, jwt.NewManager("test-secret", time.Hour))

	// 未启用Redis时登出直接成功
	assert.NoError(t, uc.Execute(context.Background(), 7, "token-abc"))
}

func TestLogin_SavesSession(t *testing.T) {
	repo := newFakeRepo()
	svc := domain.NewService(repo)
	store := newFakeSessionStore()
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bibliotecario", "libros2024", "María López")
	require.NoError(t, err)

	uc := NewLoginUseCase(svc, jwtManager, store)
	resp, err := uc.Execute(ctx, LoginRequest{Username: "bibliotecario", Password: "libros2024"})
	require.NoError(t, err)

	session, ok := store.saved[resp.Librarian.ID]
	require.True(t, ok, "登录应保存会话")
	assert.Equal(t, "bibliotecario", session["username"])
}
