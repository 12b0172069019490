package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
	return db.AutoMigrate(
		&BookModel{},
		&LibrarianModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，domain/book/entity.go不依赖GORM
// 2. 枚举(分类/介质/可借状态)以字符串形式落库，可读性优先
// 3. 借阅会话不落库：借阅人是通知事件的载荷，不是馆藏的持久属性
type BookModel struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author       string    `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Category     string    `gorm:"size:20;not null;comment:分类(FICCION/NOFICCION)"`
	Medium       string    `gorm:"size:20;not null;comment:介质(FISICO/DIGITAL)"`
	Availability string    `gorm:"index;size:20;not null;comment:可借状态(DISPONIBLE/PRESTADO)"`
	Description  string    `gorm:"size:500;not null;comment:展示描述(由字段派生,保存时重算)"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
	UpdatedAt    time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// LibrarianModel GORM馆员模型
type LibrarianModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:32;not null;comment:登录名"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Name      string    `gorm:"size:50;not null;comment:姓名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (LibrarianModel) TableName() string {
	return "librarians"
}
