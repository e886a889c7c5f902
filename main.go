package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petadot/db"
	"petadot/middleware"
	"petadot/model/app_model"
	"petadot/mongodb"
	"petadot/pkg/config"
	"petadot/pkg/goroutinepool"
	"petadot/pkg/monitoring"
	"petadot/redis"
	"petadot/router"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 构建时注入的变量
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// 处理命令行参数
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("PetAdot\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		case "-help", "--help", "-h":
			fmt.Printf("PetAdot - 宠物领养与寻宠平台后端\n\n")
			fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
			fmt.Printf("Options:\n")
			fmt.Printf("  -version, -v     显示版本信息\n")
			fmt.Printf("  -help, -h        显示帮助信息\n")
			return
		}
	}

	// 初始化配置
	if err := config.InitConfig(); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	cfg := config.GetConfig()

	log.Printf("启动 petadot (端口: %s)...", cfg.Server.Port)

	// 初始化数据库并迁移表结构
	db.Init()
	if err := db.Dao.AutoMigrate(
		&app_model.AppUser{},
		&app_model.Ong{},
		&app_model.Pet{},
		&app_model.Event{},
		&app_model.PetStory{},
		&app_model.ModerationKeyword{},
		&app_model.ModerationSetting{},
	); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化 Redis 客户端
	if err := redis.InitRedis(cfg.Redis); err != nil {
		log.Printf("Redis 初始化失败，页面缓存降级为本地缓存: %v", err)
	}

	// 初始化 MongoDB 客户端（未配置时跳过，审核日志只落应用日志）
	mongodb.InitMongoDB()

	// 注册自定义校验规则
	middleware.RegisterValidators()

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)
	app := gin.New()

	// 添加全局中间件
	app.Use(middleware.Recovery())
	app.Use(middleware.ErrorHandler())
	app.Use(middleware.RequestLogger("logs"))
	app.Use(middleware.Cors())
	app.Use(middleware.RateLimit(1000))

	// 添加 Prometheus 监控中间件
	app.Use(monitoring.PrometheusMiddleware())

	// 添加监控指标端点
	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	app.GET("/health", func(c *gin.Context) {
		submitted, completed, failed := goroutinepool.GetPool().Stats()
		c.JSON(http.StatusOK, gin.H{
			"service":   "petadot",
			"status":    "healthy",
			"timestamp": time.Now(),
			"redis":     redis.IsConnected(),
			"pool": gin.H{
				"submitted": submitted,
				"completed": completed,
				"failed":    failed,
			},
		})
	})

	// 初始化路由
	router.Init(app)

	// 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Printf("服务器启动在端口 :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，开始优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器关闭失败: %v", err)
	}

	// 等待后台任务收尾
	goroutinepool.GetPool().Stop()

	if err := redis.CloseRedis(); err != nil {
		log.Printf("Redis 关闭失败: %v", err)
	}
	mongodb.Close()

	log.Println("服务已退出")
}
