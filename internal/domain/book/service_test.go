package book

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// fakeRepo 内存仓储桩（并发安全，ID原子分配）
type fakeRepo struct {
	mu     sync.Mutex
	nextID uint
	books  map[uint]Book
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[uint]Book)}
}

func (r *fakeRepo) Save(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == 0 {
		r.nextID++
		b.ID = r.nextID
	}
	r.books[b.ID] = *b
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	copied := b
	return &copied, nil
}

func (r *fakeRepo) FindAll(_ context.Context) ([]*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*Book, 0, len(r.books))
	for id := uint(1); id <= r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			copied := b
			result = append(result, &copied)
		}
	}
	return result, nil
}

// TestService_AddBook 测试新书入库
func TestService_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("合法图书入库成功", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		b, err := svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
		require.NoError(t, err)
		assert.NotZero(t, b.ID, "入库后应分配ID")
		assert.Equal(t, AvailabilityAvailable, b.Availability)
		assert.Contains(t, b.Description(), "1984 - George Orwell (FICCION, DIGITAL)")

		stored, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, AvailabilityAvailable, stored.Availability)
	})

	t.Run("校验失败不入库", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		_, err := svc.AddBook(ctx, "", "Orwell", CategoryFiction, MediumDigital)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidTitle, apperrors.CodeOf(err))

		all, _ := repo.FindAll(ctx)
		assert.Empty(t, all, "校验失败的图书不应被持久化")
	})

	t.Run("缺少分类报必填错误", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		_, err := svc.AddBook(ctx, "1984", "George Orwell", "", MediumDigital)
		assert.Equal(t, apperrors.ErrCodeMissingRequiredField, apperrors.CodeOf(err))
	})
}

// TestService_LoanBook 测试借出用例
func TestService_LoanBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常借出", func(t *testing.T) {
		repo := newFakeRepo()
		obs := &recordingObserver{}
		svc := NewService(repo, obs)

		b, err := svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
		require.NoError(t, err)

		msg, err := svc.LoanBook(ctx, b.ID, "Juan")
		require.NoError(t, err)
		assert.Contains(t, msg, "Juan", "确认文案应包含借阅人")

		stored, _ := repo.FindByID(ctx, b.ID)
		assert.Equal(t, AvailabilityLoaned, stored.Availability, "借出状态应写回仓储")

		require.Len(t, obs.calls, 1, "成功借出应触发一次通知")
		assert.Contains(t, obs.calls[0], "Juan")
	})

	t.Run("重复借出失败且状态不变", func(t *testing.T) {
		repo := newFakeRepo()
		obs := &recordingObserver{}
		svc := NewService(repo, obs)

		b, _ := svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
		_, err := svc.LoanBook(ctx, b.ID, "Juan")
		require.NoError(t, err)

		_, err = svc.LoanBook(ctx, b.ID, "Ana")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidStateTransition, apperrors.CodeOf(err))

		stored, _ := repo.FindByID(ctx, b.ID)
		assert.Equal(t, AvailabilityLoaned, stored.Availability)
		assert.Len(t, obs.calls, 1, "失败的借出不应触发通知")
	})

	t.Run("图书不存在", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.LoanBook(ctx, 999, "Juan")
		assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.CodeOf(err))
	})
}

// TestService_ReturnBook 测试归还用例
func TestService_ReturnBook(t *testing.T) {
	ctx := context.Background()

	t.Run("归还后回到可借状态", func(t *testing.T) {
		repo := newFakeRepo()
		obs := &recordingObserver{}
		svc := NewService(repo, obs)

		b, _ := svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
		_, err := svc.LoanBook(ctx, b.ID, "Juan")
		require.NoError(t, err)

		_, err = svc.ReturnBook(ctx, b.ID)
		require.NoError(t, err)

		stored, _ := repo.FindByID(ctx, b.ID)
		assert.Equal(t, AvailabilityAvailable, stored.Availability)

		require.Len(t, obs.calls, 2)
		assert.Contains(t, obs.calls[1], "Juan", "归还事件应带上原借阅人")
	})

	t.Run("未借出的图书无法归还", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)

		b, _ := svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
		_, err := svc.ReturnBook(ctx, b.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidStateTransition, apperrors.CodeOf(err))

		stored, _ := repo.FindByID(ctx, b.ID)
		assert.Equal(t, AvailabilityAvailable, stored.Availability)
	})
}

// TestService_ConcurrentLoans 测试并发借阅同一本书
// 并发借阅必须恰好一个成功，其余全部观察到状态流转错误，绝不双重借出
func TestService_ConcurrentLoans(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	b, err := svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
	require.NoError(t, err)

	const workers = 32
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.LoanBook(ctx, b.ID, "Juan")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	success, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			success++
		case apperrors.CodeOf(err) == apperrors.ErrCodeInvalidStateTransition:
			rejected++
		default:
			t.Fatalf("意外错误: %v", err)
		}
	}

	assert.Equal(t, 1, success, "并发借阅应恰好一个成功")
	assert.Equal(t, workers-1, rejected)

	stored, _ := repo.FindByID(ctx, b.ID)
	assert.Equal(t, AvailabilityLoaned, stored.Availability)
}

// TestService_Search 测试检索
func TestService_Search(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.AddBook(ctx, "Cien años de soledad", "Gabriel García Márquez", CategoryFiction, MediumPhysical)
	require.NoError(t, err)
	_, err = svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
	require.NoError(t, err)
	_, err = svc.AddBook(ctx, "Cosmos", "Carl Sagan", CategoryNonFiction, MediumPhysical)
	require.NoError(t, err)

	t.Run("按作者检索大小写不敏感", func(t *testing.T) {
		result, err := svc.Search(ctx, "garcía", "author")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Gabriel García Márquez", result[0].Author)
	})

	t.Run("按分类检索", func(t *testing.T) {
		result, err := svc.Search(ctx, "noficcion", "category")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Cosmos", result[0].Title)
	})

	t.Run("未知字段回落为按标题检索", func(t *testing.T) {
		result, err := svc.Search(ctx, "1984", "publisher")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "1984", result[0].Title)
	})

	t.Run("无命中返回空列表", func(t *testing.T) {
		result, err := svc.Search(ctx, "不存在的书", "title")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

// TestService_ListAll 测试全量列表
func TestService_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, _ = svc.AddBook(ctx, "1984", "George Orwell", CategoryFiction, MediumDigital)
	_, _ = svc.AddBook(ctx, "Cosmos", "Carl Sagan", CategoryNonFiction, MediumPhysical)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
