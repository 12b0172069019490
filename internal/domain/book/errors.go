package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
// 设计说明：
// 校验错误按"种类"区分错误码（书名/作者/必填字段），调用方据此分支；
// 同一种类下不同规则用不同文案，保证报错信息可复现、可定位
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleBlank 书名为空
	ErrTitleBlank = apperrors.New(apperrors.ErrCodeInvalidTitle, "书名不能为空")

	// ErrTitleTooShort 书名过短
	ErrTitleTooShort = apperrors.New(apperrors.ErrCodeInvalidTitle, "书名至少需要2个字符")

	// ErrAuthorBlank 作者为空
	ErrAuthorBlank = apperrors.New(apperrors.ErrCodeInvalidAuthor, "作者不能为空")

	// ErrAuthorTooShort 作者名过短
	ErrAuthorTooShort = apperrors.New(apperrors.ErrCodeInvalidAuthor, "作者名至少需要2个字符")

	// ErrAuthorBadChars 作者名包含非法字符
	ErrAuthorBadChars = apperrors.New(apperrors.ErrCodeInvalidAuthor, "作者名只能包含字母和空格")

	// ErrCategoryRequired 分类未设置
	ErrCategoryRequired = apperrors.New(apperrors.ErrCodeMissingRequiredField, "图书分类不能为空")

	// ErrMediumRequired 载体未设置
	ErrMediumRequired = apperrors.New(apperrors.ErrCodeMissingRequiredField, "图书载体不能为空")

	// ErrNotAvailable 图书不可借（已借出时再次借阅）
	ErrNotAvailable = apperrors.New(apperrors.ErrCodeInvalidStateTransition, "图书已借出，当前不可借阅")

	// ErrNotLoaned 图书未借出（未借出时归还）
	ErrNotLoaned = apperrors.New(apperrors.ErrCodeInvalidStateTransition, "图书未处于借出状态，无法归还")
)

// IsValidationError 判断是否为校验链错误（书名/作者/必填字段）
func IsValidationError(err error) bool {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeInvalidTitle,
		apperrors.ErrCodeInvalidAuthor,
		apperrors.ErrCodeMissingRequiredField:
		return true
	default:
		return false
	}
}
