package librarian

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/xiebiao/library/internal/domain/librarian"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/jwt"
)

type fakeRepo struct {
	mu         sync.Mutex
	byUsername map[string]domain.Librarian
	nextID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUsername: make(map[string]domain.Librarian)}
}

func (r *fakeRepo) Create(ctx context.Context, l *domain.Librarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUsername[l.Username]; exists {
		return domain.ErrUsernameDuplicate
	}
	r.nextID++
	l.ID = r.nextID
	r.byUsername[l.Username] = *l
	return nil
}

func (r *fakeRepo) FindByUsername(ctx context.Context, username string) (*domain.Librarian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeRepo()
	svc := domain.NewService(repo)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bibliotecario", "libros2024", "María López")
	require.NoError(t, err)

	uc := NewLoginUseCase(svc, jwtManager, nil)
	resp, err := uc.Execute(ctx, LoginRequest{Username: "bibliotecario", Password: "libros2024"})
	require.NoError(t, err)

	assert.Equal(t, "bibliotecario", resp.Librarian.Username)
	assert.Equal(t, "María López", resp.Librarian.Name)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	require.NotEmpty(t, resp.Token)

	// 签发的Token应能被同一管理器解析
	claims, err := jwtManager.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Librarian.ID, claims.LibrarianID)
	assert.Equal(t, "bibliotecario", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeRepo()
	svc := domain.NewService(repo)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bibliotecario", "libros2024", "María López")
	require.NoError(t, err)

	uc := NewLoginUseCase(svc, jwtManager, nil)
	_, err = uc.Execute(ctx, LoginRequest{Username: "bibliotecario", Password: "incorrecta1"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidPassword, apperrors.CodeOf(err))
}
