//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式：
// Step 1: 修改本文件的Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
//
// 说明：本配置组装的是MySQL+Redis的完整部署形态；
// memory驱动/禁用Redis等可选形态由main.go的手动组装处理

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/library/internal/application/book"
	applibrarian "github.com/xiebiao/library/internal/application/librarian"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/librarian"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/notify"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
	mysql.NewLibrarianRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	providePublisher,
	provideObservers,
	provideBookService,
	librarian.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewAddBookUseCase,
	appbook.NewLoanBookUseCase,
	appbook.NewReturnBookUseCase,
	appbook.NewSearchBooksUseCase,
	provideListBooksUseCase,
	appbook.NewImportBooksUseCase,
	applibrarian.NewRegisterUseCase,
	applibrarian.NewLoginUseCase,
	applibrarian.NewLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	wire.Bind(new(applibrarian.SessionStore), new(*redis.SessionStore)),
	provideBookCache,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewLibrarianHandler,
)

// provideLogger 从配置创建日志器
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideBookCache 从Redis客户端创建列表缓存
func provideBookCache(client *goredis.Client) *redis.BookCache {
	return redis.NewBookCache(client)
}

// providePublisher 从配置创建借阅事件发布器
// URL未配置时返回nil，借阅事件不出进程
func providePublisher(cfg *config.Config, log *zap.Logger) (*mq.Publisher, error) {
	if !cfg.MQ.Enabled() {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic", log)
}

// provideObservers 汇总借阅事件监听者（与main.go步骤6一致）
func provideObservers(log *zap.Logger, publisher *mq.Publisher) []book.Observer {
	observers := []book.Observer{
		notify.NewLogObserver(log),
		notify.NewMetricsObserver(),
	}
	if publisher != nil {
		observers = append(observers, notify.NewMQObserver(publisher, log))
	}
	return observers
}

// provideBookService 组装图书领域服务
// NewService是变参构造，监听者列表由provideObservers汇总
func provideBookService(repo book.Repository, observers []book.Observer) book.Service {
	return book.NewService(repo, observers...)
}

// provideListBooksUseCase 组装列表查询用例（缓存TTL来自配置）
func provideListBooksUseCase(svc book.Service, cache *redis.BookCache, cfg *config.Config) *appbook.ListBooksUseCase {
	return appbook.NewListBooksUseCase(svc, cache, cfg.Cache.BookListTTL)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	librarianHandler *handler.LibrarianHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	registerRoutes(r, bookHandler, librarianHandler, authMiddleware)
	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
