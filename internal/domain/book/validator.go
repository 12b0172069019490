package book

import (
	"regexp"
	"strings"
)

// Validator 单项校验
// 设计说明：
// 历史系统用"责任链"对象（校验器持有下一个校验器的指针）实现入库校验，
// 这里改为有序校验器切片：每个校验器彼此独立、可单测，链在Chain中集中
// 编排，新增校验只需Append，不改动已有校验器（开闭原则）
type Validator interface {
	// Validate 通过返回nil，失败返回对应的领域错误
	Validate(b *Book) error
}

// Chain 校验链：按固定顺序执行，遇到第一个失败立即停止
// 顺序即报错顺序，调用方不应重排（保证报错信息确定、可复现）
type Chain struct {
	validators []Validator
}

// NewChain 创建校验链
func NewChain(validators ...Validator) *Chain {
	return &Chain{validators: validators}
}

// DefaultChain 默认入库校验链：书名 → 作者 → 必填字段
func DefaultChain() *Chain {
	return NewChain(
		TitleValidator{},
		AuthorValidator{},
		RequiredFieldsValidator{},
	)
}

// Append 追加校验器（扩展点，不修改既有校验）
func (c *Chain) Append(v Validator) *Chain {
	c.validators = append(c.validators, v)
	return c
}

// Validate 执行校验链，返回第一个失败；全部通过返回nil
// 无副作用：不修改Book
func (c *Chain) Validate(b *Book) error {
	for _, v := range c.validators {
		if err := v.Validate(b); err != nil {
			return err
		}
	}
	return nil
}

// TitleValidator 书名校验
// 规则：非空白，且至少2个字符
type TitleValidator struct{}

func (TitleValidator) Validate(b *Book) error {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		return ErrTitleBlank
	}
	// 按字符数而非字节数计算（兼容多字节书名）
	if len([]rune(b.Title)) < 2 {
		return ErrTitleTooShort
	}
	return nil
}

// authorPattern 作者名合法字符：字母（含带重音符的西语字母）和空格
// 沿用历史系统的字符集定义
var authorPattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)

// AuthorValidator 作者校验
// 规则：非空白、至少2个字符、只含字母和空格（数字/符号不合法）
type AuthorValidator struct{}

func (AuthorValidator) Validate(b *Book) error {
	author := strings.TrimSpace(b.Author)
	if author == "" {
		return ErrAuthorBlank
	}
	if len([]rune(b.Author)) < 2 {
		return ErrAuthorTooShort
	}
	if !authorPattern.MatchString(b.Author) {
		return ErrAuthorBadChars
	}
	return nil
}

// RequiredFieldsValidator 必填字段校验
// 规则：分类和载体必须在入库前设置
type RequiredFieldsValidator struct{}

func (RequiredFieldsValidator) Validate(b *Book) error {
	if b.Category == "" {
		return ErrCategoryRequired
	}
	if b.Medium == "" {
		return ErrMediumRequired
	}
	return nil
}
