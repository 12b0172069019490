package errors

import (
	"errors"
	"fmt"
	"testing"
)

// TestAppError_Unwrap 测试错误链（errors.Is/As支持）
func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	appErr := Wrap(inner, "数据库错误")

	if !errors.Is(appErr, inner) {
		t.Error("Wrap后应能通过errors.Is找到内部错误")
	}

	wrapped := fmt.Errorf("查询图书失败: %w", appErr)
	var target *AppError
	if !errors.As(wrapped, &target) {
		t.Fatal("应能通过errors.As提取AppError")
	}
	if target.Code != ErrCodeInternal {
		t.Errorf("期望错误码%d，实际%d", ErrCodeInternal, target.Code)
	}
}

// TestCodeOf 测试错误码提取
func TestCodeOf(t *testing.T) {
	if code := CodeOf(New(ErrCodeInvalidTitle, "书名不能为空")); code != ErrCodeInvalidTitle {
		t.Errorf("期望错误码%d，实际%d", ErrCodeInvalidTitle, code)
	}

	// 非AppError应归类为内部错误
	if code := CodeOf(errors.New("boom")); code != ErrCodeInternal {
		t.Errorf("期望错误码%d，实际%d", ErrCodeInternal, code)
	}
}

// TestGetAppError 测试错误提取与兜底包装
func TestGetAppError(t *testing.T) {
	appErr := GetAppError(errors.New("raw"))
	if appErr.Code != ErrCodeInternal {
		t.Errorf("非AppError应包装为内部错误，实际错误码%d", appErr.Code)
	}
	if appErr.Err == nil {
		t.Error("包装后应保留原始错误")
	}
}
