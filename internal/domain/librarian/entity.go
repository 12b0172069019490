package librarian

import (
	"time"
)

// Librarian 馆员实体（聚合根）
// 设计说明：
// 1. 图书目录的写操作（入库、借出、归还、导入）只对登录馆员开放，
//    查询接口公开
// 2. 密码只存bcrypt哈希，不提供任何暴露明文的方法
// 3. 领域实体不依赖GORM tag（infrastructure层做映射）
type Librarian struct {
	ID        uint
	Username  string // 登录名（唯一）
	Password  string // bcrypt哈希值
	Name      string // 展示姓名
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLibrarian 创建馆员（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewLibrarian(username, hashedPassword, name string) *Librarian {
	now := time.Now()
	return &Librarian{
		Username:  username,
		Password:  hashedPassword,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
