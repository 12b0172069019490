package book

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Observer 借阅事件监听者
// 设计说明：
// 历史系统用Observer模式在状态流转成功后广播通知，这里保留同样的
// 同步回调语义：每次成功的借出/归还，按订阅顺序依次调用所有监听者。
// 回调无返回值：监听者自行消化失败（记日志、打点），不回滚状态流转
type Observer interface {
	// Update 收到事件通知
	// description: 图书当前的展示描述（含借阅信息）
	// event: 事件描述文本
	Update(description, event string)
}

// 事件文本前缀，监听者据此区分事件种类
const (
	EventLoaned   = "图书已借出"
	EventReturned = "图书已归还"
)

// LoanSession 借阅会话（临时数据，不持久化）
// 仅在图书处于借出状态期间存在，归还时丢弃
type LoanSession struct {
	ID       uuid.UUID // 会话标识（事件消息中携带，便于外部系统对账）
	Borrower string    // 借阅人
	LoanedAt time.Time // 借出时间
}

// LoanRecord 借阅包装
// 设计说明：
// 1. 历史系统用Decorator把借阅行为包在图书对象外面；这里用组合实现：
//    持有*Book和临时借阅会话，暴露状态流转方法，不引入继承
// 2. 状态流转与通知从调用方视角是原子的：要么状态变更+监听者全部收到
//    通知，要么完全失败（无状态变更、无通知）
// 3. LoanRecord不拥有图书的存储身份：流转成功后底层Book的借阅状态已
//    更新，由调用方负责写回仓储
type LoanRecord struct {
	book      *Book
	session   *LoanSession
	observers []Observer
}

// NewLoanRecord 包装一本图书
// session传入当前已知的借阅会话（归还时用于取回借阅人），无则为nil
func NewLoanRecord(b *Book, session *LoanSession) *LoanRecord {
	return &LoanRecord{
		book:    b,
		session: session,
	}
}

// Subscribe 订阅借阅事件（按订阅顺序通知，不去重）
func (l *LoanRecord) Subscribe(o Observer) {
	l.observers = append(l.observers, o)
}

// Unsubscribe 取消订阅（按相等性移除第一个匹配项）
// 动态类型不可比较的监听者（如func适配器）无法按相等性定位，调用无效果
func (l *LoanRecord) Unsubscribe(o Observer) {
	for i, existing := range l.observers {
		if observerEqual(existing, o) {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

// observerEqual 接口值相等性比较
// 直接用==在动态类型不可比较时(func、slice等)会panic，先检查可比较性
func observerEqual(a, b Observer) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// Loan 借出图书
// 仅允许从"可借"状态流转；失败时无状态变更、无通知
func (l *LoanRecord) Loan(borrower string) error {
	if l.book.Availability != AvailabilityAvailable {
		return ErrNotAvailable
	}

	l.session = &LoanSession{
		ID:       uuid.New(),
		Borrower: borrower,
		LoanedAt: time.Now(),
	}
	l.book.Availability = AvailabilityLoaned
	l.book.UpdatedAt = l.session.LoanedAt

	l.notify(fmt.Sprintf("%s，借阅人: %s", EventLoaned, borrower))
	return nil
}

// Return 归还图书
// 仅允许从"借出"状态流转；失败时无状态变更、无通知
func (l *LoanRecord) Return() error {
	if l.book.Availability != AvailabilityLoaned {
		return ErrNotLoaned
	}

	// 取出旧会话的借阅人用于事件消息，然后丢弃会话
	borrower := "未知"
	if l.session != nil {
		borrower = l.session.Borrower
	}
	l.session = nil
	l.book.Availability = AvailabilityAvailable
	l.book.UpdatedAt = time.Now()

	l.notify(fmt.Sprintf("%s，借阅人: %s", EventReturned, borrower))
	return nil
}

// Session 返回当前借阅会话（未借出时为nil）
func (l *LoanRecord) Session() *LoanSession {
	return l.session
}

// Book 返回底层图书（调用方流转成功后据此写回仓储）
func (l *LoanRecord) Book() *Book {
	return l.book
}

// Description 图书展示描述，借出期间附加借阅信息
func (l *LoanRecord) Description() string {
	desc := l.book.Description()
	if l.session != nil {
		desc += fmt.Sprintf(" [Prestado a: %s el %s]",
			l.session.Borrower, l.session.LoanedAt.Format(time.RFC3339))
	}
	return desc
}

// notify 按订阅顺序同步通知所有监听者
func (l *LoanRecord) notify(event string) {
	for _, o := range l.observers {
		o.Update(l.Description(), event)
	}
}
