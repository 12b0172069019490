package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNew 测试图书构造
func TestNew(t *testing.T) {
	b := New("1984", "George Orwell", CategoryFiction, MediumDigital)

	assert.Zero(t, b.ID, "入库前ID应为0")
	assert.Equal(t, AvailabilityAvailable, b.Availability, "新书应为可借状态")
	assert.Equal(t, CategoryFiction, b.Category)
	assert.Equal(t, MediumDigital, b.Medium)
}

// TestBook_Description 测试展示描述格式
// 格式沿用历史系统："书名 - 作者 (分类, 载体) - Estado: 状态"
func TestBook_Description(t *testing.T) {
	b := New("1984", "George Orwell", CategoryFiction, MediumDigital)

	desc := b.Description()
	assert.Contains(t, desc, "1984 - George Orwell (FICCION, DIGITAL)")
	assert.Contains(t, desc, "Estado: DISPONIBLE")

	b.Availability = AvailabilityLoaned
	assert.Contains(t, b.Description(), "Estado: PRESTADO")
}

// TestParseCategory 测试分类解析
func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{"标准格式", "FICCION", CategoryFiction},
		{"小写", "noficcion", CategoryNonFiction},
		{"带空格", " ficcion ", CategoryFiction},
		{"未知取值返回空", "poetry", ""},
		{"空字符串返回空", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.input))
		})
	}
}

// TestParseMedium 测试载体解析
func TestParseMedium(t *testing.T) {
	assert.Equal(t, MediumPhysical, ParseMedium("fisico"))
	assert.Equal(t, MediumDigital, ParseMedium("DIGITAL"))
	assert.Equal(t, Medium(""), ParseMedium("audio"))
}
