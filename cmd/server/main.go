// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"policy-pilot-go/internal/config"
	"policy-pilot-go/internal/handler"
	"policy-pilot-go/internal/middleware"
	"policy-pilot-go/internal/model"
	"policy-pilot-go/internal/pipeline"
	"policy-pilot-go/internal/repository"
	"policy-pilot-go/internal/service"
	"policy-pilot-go/pkg/database"
	"policy-pilot-go/pkg/es"
	"policy-pilot-go/pkg/kafka"
	"policy-pilot-go/pkg/log"
	"policy-pilot-go/pkg/storage"
	"policy-pilot-go/pkg/token"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库和 Redis
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	err := es.InitES(cfg.Elasticsearch)
	if err != nil {
		log.Errorf("es 初始化失败 %s", err)
		return
	}
	kafka.InitProducer(cfg.Kafka)

	// 建表
	if err := database.DB.AutoMigrate(&model.Policy{}, &model.PolicyVersion{}, &model.Notification{}); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 4. 初始化 Repository
	policyRepo := repository.NewPolicyRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)
	progressRepo := repository.NewProgressRepository(database.RDB)

	// 5. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret)
	policyStore := service.NewPolicyStore(policyRepo, notificationRepo)
	pipe := pipeline.New(policyStore)
	generationService := service.NewGenerationService(pipe, progressRepo, policyRepo)
	policyService := service.NewPolicyService(policyRepo)
	searchService := service.NewSearchService(es.ESClient)
	notificationService := service.NewNotificationService(notificationRepo)

	// 6. 启动后台 Kafka 消费者，异步执行生成任务
	go kafka.StartConsumer(cfg.Kafka, generationService)

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 8. 注册路由
	policyHandler := handler.NewPolicyHandler(generationService, policyService)
	searchHandler := handler.NewSearchHandler(searchService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	generateWsHandler := handler.NewGenerateWsHandler(generationService, jwtManager)

	apiV1 := r.Group("/api/v1")
	{
		// Policy 路由组，需要认证
		policies := apiV1.Group("/policies")
		policies.Use(middleware.AuthMiddleware(jwtManager))
		{
			policies.POST("/generate", policyHandler.Generate)
			policies.GET("/generate/:runId/progress", policyHandler.GetProgress)
			policies.GET("", policyHandler.ListPolicies)
			policies.GET("/:id", policyHandler.GetPolicy)
			policies.GET("/:id/versions", policyHandler.ListVersions)
			policies.GET("/versions/:versionId/download", policyHandler.Download)
		}

		// Search 路由组
		search := apiV1.Group("/search")
		search.Use(middleware.AuthMiddleware(jwtManager))
		{
			search.GET("/policies", searchHandler.SearchPolicies)
		}

		// Notification 路由组
		notifications := apiV1.Group("/notifications")
		notifications.Use(middleware.AuthMiddleware(jwtManager))
		{
			notifications.GET("", notificationHandler.List)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}
	}

	// Generate 路由 (WebSocket)，token 经路径传递
	r.GET("/generate/:token", generateWsHandler.Handle)

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	// 在优雅停机逻辑中，我们不需要手动关闭 Kafka 消费者，
	// 因为 StartConsumer 是一个循环，会在程序退出时自然结束。
	// 如果需要更精细的控制，可以在 StartConsumer 中实现一个关闭通道。
	log.Info("服务已优雅关闭")
}
