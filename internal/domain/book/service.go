package book

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Service 图书目录领域服务接口
// 设计说明:
// 1. 编排领域对象完成完整用例：构造 → 校验链 → 持久化，
//    以及 加载 → 借阅包装 → 状态流转 → 通知 → 写回
// 2. 不依赖具体的Repository实现（依赖倒置）
// 3. 任何失败都不会部分提交：校验失败不入库，流转失败不写回
type Service interface {
	// AddBook 新书入库
	// 新书总是可借状态；校验链失败时返回错误且不持久化
	AddBook(ctx context.Context, title, author string, category Category, medium Medium) (*Book, error)

	// LoanBook 借出图书
	// 图书不存在返回ErrBookNotFound；已借出返回ErrNotAvailable（无副作用）
	// 成功时返回确认文案（含借阅人）
	LoanBook(ctx context.Context, id uint, borrower string) (string, error)

	// ReturnBook 归还图书
	// 未借出返回ErrNotLoaned（无副作用）
	ReturnBook(ctx context.Context, id uint) (string, error)

	// Search 按字段检索（title/author/category，大小写不敏感子串匹配）
	// 未识别的字段名回落为按标题检索
	Search(ctx context.Context, criterion, field string) ([]*Book, error)

	// ListAll 返回全部图书
	ListAll(ctx context.Context) ([]*Book, error)
}

// service 领域服务实现
type service struct {
	repo  Repository
	chain *Chain

	// observers 借阅事件监听者（按注册顺序通知）
	// 每次流转时订阅到对应的LoanRecord上
	observers []Observer

	// mu保护locks和sessions两张表
	// locks: 同一图书的借阅/归还必须串行（读-改-写不是原子的），
	//        不同图书之间互不阻塞
	// sessions: 进程内的借阅会话登记表（临时数据，不持久化），
	//           归还事件从这里取回借阅人
	mu       sync.Mutex
	locks    map[uint]*sync.Mutex
	sessions map[uint]*LoanSession
}

// NewService 创建图书目录领域服务
// observers在服务生命周期内固定；测试可注入确定性监听者断言通知内容
func NewService(repo Repository, observers ...Observer) Service {
	return &service{
		repo:      repo,
		chain:     DefaultChain(),
		observers: observers,
		locks:     make(map[uint]*sync.Mutex),
		sessions:  make(map[uint]*LoanSession),
	}
}

// AddBook 新书入库
func (s *service) AddBook(ctx context.Context, title, author string, category Category, medium Medium) (*Book, error) {
	// 1. 构造图书实体（可借状态）
	b := New(title, author, category, medium)

	// 2. 校验链：第一个失败即停止，图书不会入库
	if err := s.chain.Validate(b); err != nil {
		return nil, err
	}

	// 3. 持久化（仓储分配ID）
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// LoanBook 借出图书
func (s *service) LoanBook(ctx context.Context, id uint, borrower string) (string, error) {
	// 同一图书的借阅/归还串行化：并发借阅同一本书时恰好一个成功，
	// 其余观察到"已借出"错误，绝不双重借出
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	// 1. 加载图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	// 2. 借阅包装 + 订阅监听者
	rec := NewLoanRecord(b, nil)
	for _, o := range s.observers {
		rec.Subscribe(o)
	}

	// 3. 状态流转（成功时监听者已收到通知）
	if err := rec.Loan(borrower); err != nil {
		return "", err
	}

	// 4. 写回仓储
	if err := s.repo.Save(ctx, b); err != nil {
		return "", apperrors.Wrap(err, "保存借阅状态失败")
	}

	// 5. 登记借阅会话（归还时取回借阅人）
	s.putSession(id, rec.Session())

	return fmt.Sprintf("借阅成功：《%s》已借给 %s", b.Title, borrower), nil
}

// ReturnBook 归还图书
func (s *service) ReturnBook(ctx context.Context, id uint) (string, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	// 1. 加载图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	// 2. 借阅包装（带上已登记的会话）+ 订阅监听者
	rec := NewLoanRecord(b, s.getSession(id))
	for _, o := range s.observers {
		rec.Subscribe(o)
	}

	// 3. 状态流转
	if err := rec.Return(); err != nil {
		return "", err
	}

	// 4. 写回仓储
	if err := s.repo.Save(ctx, b); err != nil {
		return "", apperrors.Wrap(err, "保存归还状态失败")
	}

	// 5. 清除借阅会话
	s.putSession(id, nil)

	return fmt.Sprintf("归还成功：《%s》已归还", b.Title), nil
}

// Search 按字段检索
func (s *service) Search(ctx context.Context, criterion, field string) ([]*Book, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	match := StrategyFor(field)
	result := make([]*Book, 0)
	for _, b := range all {
		if match(b, criterion) {
			result = append(result, b)
		}
	}
	return result, nil
}

// ListAll 返回全部图书
func (s *service) ListAll(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// =========================================
// 辅助：按图书ID加锁 / 借阅会话登记
// =========================================

// lockFor 返回某本图书的互斥锁（不存在则创建）
func (s *service) lockFor(id uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// putSession 登记/清除借阅会话（session为nil表示清除）
func (s *service) putSession(id uint, session *LoanSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session == nil {
		delete(s.sessions, id)
		return
	}
	s.sessions[id] = session
}

// getSession 取回借阅会话（未登记返回nil）
func (s *service) getSession(id uint) *LoanSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}
