package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/library/internal/application/book"
	applibrarian "github.com/xiebiao/library/internal/application/librarian"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/librarian"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/notify"
	"github.com/xiebiao/library/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
	"github.com/xiebiao/library/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供Wire版本的组装配置）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync()
	response.SetLogger(zlog)

	zlog.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("driver", cfg.Database.Driver),
	)

	// 3. 初始化指标
	metrics.Init()

	// 4. 初始化存储(按配置选择MySQL或进程内存储)
	var (
		bookRepo      book.Repository
		librarianRepo librarian.Repository
	)
	switch cfg.Database.Driver {
	case "memory":
		bookRepo = memory.NewBookRepository()
		librarianRepo = memory.NewLibrarianRepository()
		zlog.Info("使用进程内存储(数据不持久化)")
	default:
		db, err := mysql.NewDB(cfg)
		if err != nil {
			zlog.Fatal("初始化数据库失败", zap.Error(err))
		}
		bookRepo = mysql.NewBookRepository(db)
		librarianRepo = mysql.NewLibrarianRepository(db)
	}

	// 5. 初始化Redis(可选)
	var (
		sessionStore *redis.SessionStore
		bookCache    *redis.BookCache
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			zlog.Fatal("初始化Redis失败", zap.Error(err))
		}
		sessionStore = redis.NewSessionStore(redisClient)
		bookCache = redis.NewBookCache(redisClient)
		zlog.Info("Redis连接成功", zap.String("addr", cfg.Redis.Addr()))
	}

	// 6. 初始化借阅事件监听者
	observers := []book.Observer{
		notify.NewLogObserver(zlog),
		notify.NewMetricsObserver(),
	}
	if cfg.MQ.Enabled() {
		publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic", zlog)
		if err != nil {
			zlog.Fatal("初始化消息队列失败", zap.Error(err))
		}
		defer publisher.Close()
		observers = append(observers, notify.NewMQObserver(publisher, zlog))
		zlog.Info("借阅事件发布已启用", zap.String("exchange", cfg.MQ.Exchange))
	}

	// 7. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 领域层
	bookService := book.NewService(bookRepo, observers...)
	librarianService := librarian.NewService(librarianRepo)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire)

	// 应用层
	addBookUseCase := appbook.NewAddBookUseCase(bookService, bookCache)
	loanBookUseCase := appbook.NewLoanBookUseCase(bookService, bookCache)
	returnBookUseCase := appbook.NewReturnBookUseCase(bookService, bookCache)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, bookCache, cfg.Cache.BookListTTL)
	importBooksUseCase := appbook.NewImportBooksUseCase(bookService, bookCache)
	registerUseCase := applibrarian.NewRegisterUseCase(librarianService)

	// Redis未启用时传入无类型nil接口(带类型的nil指针会绕过用例内的nil判断)
	var sessions applibrarian.SessionStore
	if sessionStore != nil {
		sessions = sessionStore
	}
	loginUseCase := applibrarian.NewLoginUseCase(librarianService, jwtManager, sessions)
	logoutUseCase := applibrarian.NewLogoutUseCase(sessions, jwtManager)

	// 接口层
	bookHandler := handler.NewBookHandler(
		addBookUseCase,
		loanBookUseCase,
		returnBookUseCase,
		searchBooksUseCase,
		listBooksUseCase,
		importBooksUseCase,
	)
	librarianHandler := handler.NewLibrarianHandler(registerUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(zlog))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 9. 注册路由
	registerRoutes(r, bookHandler, librarianHandler, authMiddleware)

	// 10. 启动服务（带优雅停机）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zlog.Info("服务启动", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("收到停机信号，开始优雅停机")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("停机超时", zap.Error(err))
	}
	zlog.Info("服务已停止")
}

// registerRoutes 注册路由
// 读接口公开，写接口(登记/借阅/归还/导入)需要馆员登录
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	librarianHandler *handler.LibrarianHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 馆员模块（公开接口）
		librarians := v1.Group("/librarians")
		{
			librarians.POST("/register", librarianHandler.Register)
			librarians.POST("/login", librarianHandler.Login)
			librarians.POST("/logout", authMiddleware.RequireAuth(), librarianHandler.Logout)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			// 查询接口公开
			books.GET("", bookHandler.ListBooks)
			books.GET("/search", bookHandler.SearchBooks)

			// 写接口需要登录
			books.POST("", authMiddleware.RequireAuth(), bookHandler.AddBook)
			books.POST("/:id/loan", authMiddleware.RequireAuth(), bookHandler.LoanBook)
			books.POST("/:id/return", authMiddleware.RequireAuth(), bookHandler.ReturnBook)
			books.POST("/import", authMiddleware.RequireAuth(), bookHandler.ImportBooks)
		}
	}
}
