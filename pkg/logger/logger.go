// Package logger 提供基于zap的结构化日志
//
// 教学说明：
// 1. 为什么不用fmt.Printf/log.Printf？
//   - 无法按字段检索（排查问题只能grep文本）
//   - 无法控制日志级别（debug日志污染生产环境）
//   - 无法切换输出格式（开发看console，生产收集json）
//
// 2. zap的两个API：
//   - *zap.Logger: 强类型字段（zap.String/zap.Uint），零分配，性能最好
//   - SugaredLogger: printf风格，方便但稍慢
//     本项目统一使用*zap.Logger
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置（与config.yaml的log段对应）
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool   // 是否记录调用位置
}

// New 创建zap日志器
// 开发环境建议 format=console + level=debug
// 生产环境建议 format=json + level=info（便于日志收集系统解析）
func New(cfg Config) (*zap.Logger, error) {
	// 1. 解析日志级别
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	// 2. 选择基础配置
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableCaller = !cfg.EnableCaller

	// 3. 输出位置（默认stdout）
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
	} else {
		zapCfg.OutputPaths = []string{"stdout"}
	}

	return zapCfg.Build()
}

// NewNop 创建空日志器（测试用，丢弃所有输出）
func NewNop() *zap.Logger {
	return zap.NewNop()
}
