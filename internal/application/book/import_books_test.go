package book

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
)

// fakeRepo 测试用内存仓储
type fakeRepo struct {
	mu     sync.Mutex
	books  map[uint]book.Book
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[uint]book.Book)}
}

func (r *fakeRepo) Save(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == 0 {
		r.nextID++
		b.ID = r.nextID
	}
	r.books[b.ID] = *b
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := b
	return &cp, nil
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*book.Book, 0, len(r.books))
	for id := uint(1); id <= r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			cp := b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func TestImportBooks_Mixed(t *testing.T) {
	repo := newFakeRepo()
	svc := book.NewService(repo)
	uc := NewImportBooksUseCase(svc, nil)

	resp, err := uc.Execute(context.Background(), ImportBooksRequest{
		Records: []LegacyRecord{
			{BookTitle: "Don Quijote", BookAuthor: "Miguel de Cervantes", BookType: "Fiction", IsAvailable: true},
			{BookTitle: "Cosmos", BookAuthor: "Carl Sagan", BookType: "NonFiction", IsAvailable: false},
			{BookTitle: "X", BookAuthor: "Anon", BookType: "Fiction", IsAvailable: true}, // 标题过短
			{BookTitle: "Ilíada", BookAuthor: "Homero", BookType: "Poetry", IsAvailable: true}, // 未知类型
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Imported)
	require.Len(t, resp.Failed, 2)
	assert.Equal(t, 2, resp.Failed[0].Index)
	assert.Equal(t, "X", resp.Failed[0].Title)
	assert.Equal(t, 3, resp.Failed[1].Index)

	books, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	// 旧系统不在馆的记录导入后处于借出状态
	assert.Equal(t, book.AvailabilityAvailable, books[0].Availability)
	assert.Equal(t, book.AvailabilityLoaned, books[1].Availability)
	assert.Equal(t, book.CategoryNonFiction, books[1].Category)
	assert.Equal(t, book.MediumPhysical, books[1].Medium)
}

func TestImportBooks_FailedRecordNotPersisted(t *testing.T) {
	repo := newFakeRepo()
	svc := book.NewService(repo)
	uc := NewImportBooksUseCase(svc, nil)

	resp, err := uc.Execute(context.Background(), ImportBooksRequest{
		Records: []LegacyRecord{
			{BookTitle: "", BookAuthor: "Nadie", BookType: "Fiction", IsAvailable: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Imported)
	require.Len(t, resp.Failed, 1)

	books, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
}
