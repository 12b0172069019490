package book

import (
	"fmt"
	"strings"
	"time"
)

// Category 图书分类
// 设计说明：
// 枚举值沿用馆藏系统的历史存储格式（西语常量），数据库和对外描述中
// 均以该格式出现，不能随意更名
type Category string

const (
	CategoryFiction    Category = "FICCION"   // 虚构类
	CategoryNonFiction Category = "NOFICCION" // 非虚构类
)

// ParseCategory 解析分类（大小写不敏感）
// 未知取值返回空值，由校验链的必填检查兜底报错
func ParseCategory(s string) Category {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CategoryFiction):
		return CategoryFiction
	case string(CategoryNonFiction):
		return CategoryNonFiction
	default:
		return ""
	}
}

// Medium 图书载体
type Medium string

const (
	MediumPhysical Medium = "FISICO"  // 纸质书
	MediumDigital  Medium = "DIGITAL" // 电子书
)

// ParseMedium 解析载体（大小写不敏感）
func ParseMedium(s string) Medium {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(MediumPhysical):
		return MediumPhysical
	case string(MediumDigital):
		return MediumDigital
	default:
		return ""
	}
}

// Availability 借阅状态
type Availability string

const (
	AvailabilityAvailable Availability = "DISPONIBLE" // 在馆可借
	AvailabilityLoaned    Availability = "PRESTADO"   // 已借出
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书目录聚合的根实体
// 2. ID在持久化前为0，由仓储在Save时分配（单调递增且唯一）
// 3. 借阅状态只能通过LoanRecord的状态流转修改，其余字段视为不可变
//   （"修改"即同ID整体替换）
type Book struct {
	ID           uint
	Title        string       // 书名
	Author       string       // 作者
	Category     Category     // 分类
	Medium       Medium       // 载体
	Availability Availability // 借阅状态
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New 创建新图书(工厂方法)
// 新书总是处于可借状态；字段校验由Chain负责，不在此处做
func New(title, author string, category Category, medium Medium) *Book {
	now := time.Now()
	return &Book{
		Title:        title,
		Author:       author,
		Category:     category,
		Medium:       medium,
		Availability: AvailabilityAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Description 生成展示描述（派生字段，不单独存储输入）
// 格式沿用历史系统: "书名 - 作者 (分类, 载体) - Estado: 状态"
func (b *Book) Description() string {
	return fmt.Sprintf("%s - %s (%s, %s) - Estado: %s",
		b.Title, b.Author, b.Category, b.Medium, b.Availability)
}

// IsAvailable 是否在馆可借
func (b *Book) IsAvailable() bool {
	return b.Availability == AvailabilityAvailable
}
