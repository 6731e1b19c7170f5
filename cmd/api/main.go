package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fanhub-go/internal/api/handler"
	"fanhub-go/internal/api/middleware"
	"fanhub-go/internal/api/router"
	"fanhub-go/internal/config"
	infraES "fanhub-go/internal/infra/elasticsearch"
	infraKafka "fanhub-go/internal/infra/kafka"
	infraMinio "fanhub-go/internal/infra/minio"
	infraRedis "fanhub-go/internal/infra/redis"
	"fanhub-go/internal/model"
	"fanhub-go/internal/service"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/selector"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 选择存储后端（postgres → firestore → memory 逐个尝试）
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := selector.Select(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("Failed to select storage backend", zap.Error(err))
	}
	defer store.Close()

	// 初始化 Redis（可选，失败则 YouTube 代理不走缓存）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis init failed, youtube proxy cache disabled", zap.Error(err))
	} else {
		defer infraRedis.Close()
	}

	// 初始化 MinIO（可选，失败则制品上传不可用）
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Warn("MinIO init failed, artifact upload disabled", zap.Error(err))
	}

	// 初始化 Kafka 生产者（可选，失败则通知事件不发布）
	if len(cfg.Kafka.Brokers) > 0 {
		if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
			logger.Warn("Kafka producer init failed, notification events disabled", zap.Error(err))
		} else {
			defer infraKafka.CloseProducer()
		}
	}

	// 初始化 Elasticsearch（可选，失败则搜索降级到存储层扫描）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to storage scan", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Storage -> Service -> Handler）
	authService := service.NewAuthService(store)
	videoService := service.NewVideoService(store)
	searchService := service.NewSearchService(store)
	downloadService := service.NewDownloadService(store)
	notificationService := service.NewNotificationService(store)
	subscriberService := service.NewSubscriberService(store)
	settingsService := service.NewSettingsService(store)
	commentService := service.NewCommentService(store)
	linkService := service.NewLinkService()
	qrcodeService := service.NewQRCodeService(store)
	youtubeService := service.NewYouTubeService(store)

	// 下载目录为空时填充示例资源
	seedSampleDownloads(store)

	// ES 可用时全量重建视频索引，保证索引与存储一致
	if infraES.Enabled() {
		rebuildCtx, rebuildCancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := videoService.RebuildIndex(rebuildCtx); err != nil {
			logger.Warn("Rebuild video search index failed", zap.Error(err))
		}
		rebuildCancel()
	}

	authHandler := handler.NewAuthHandler(authService)
	videoHandler := handler.NewVideoHandler(videoService, searchService)
	downloadHandler := handler.NewDownloadHandler(downloadService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	commentHandler := handler.NewCommentHandler(commentService)
	linkHandler := handler.NewLinkHandler(linkService)
	qrcodeHandler := handler.NewQRCodeHandler(qrcodeService)
	youtubeHandler := handler.NewYouTubeHandler(youtubeService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler(store))
	r.GET("/", rootHandler)

	// 注册业务路由
	router.Setup(r,
		authHandler,
		videoHandler,
		downloadHandler,
		notificationHandler,
		subscriberHandler,
		settingsHandler,
		commentHandler,
		linkHandler,
		qrcodeHandler,
		youtubeHandler,
	)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("storage", store.Name()),
		zap.String("addr", addr),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// seedSampleDownloads 下载目录为空时写入三条示例资源，方便空库起步
func seedSampleDownloads(store storage.Storage) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	downloads, err := store.ListDownloads(ctx)
	if err != nil || len(downloads) > 0 {
		return
	}

	desc := func(s string) *string { return &s }
	samples := []model.Download{
		{
			Title:       "Pixel Dungeon",
			Description: desc("经典像素风地牢探索游戏"),
			Type:        model.DownloadTypeGame,
			Version:     "1.2.0",
			DownloadURL: "/downloads/pixel-dungeon-1.2.0.zip",
			ReleaseDate: time.Now(),
		},
		{
			Title:       "Enhanced Biomes",
			Description: desc("扩展生态群系的游戏模组"),
			Type:        model.DownloadTypeMod,
			Version:     "2.4.1",
			DownloadURL: "/downloads/enhanced-biomes-2.4.1.zip",
			ReleaseDate: time.Now(),
		},
		{
			Title:       "Sprite Sheet Generator",
			Description: desc("精灵图拼接工具"),
			Type:        model.DownloadTypeTool,
			Version:     "1.0.5",
			DownloadURL: "/downloads/sprite-sheet-generator-1.0.5.zip",
			ReleaseDate: time.Now(),
		},
	}

	for i := range samples {
		if err := store.CreateDownload(ctx, &samples[i]); err != nil {
			logger.Warn("Seed sample download failed",
				zap.String("title", samples[i].Title), zap.Error(err))
			return
		}
	}
	logger.Info("Sample downloads seeded", zap.Int("count", len(samples)))
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.Get()

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Service is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"mode":      cfg.App.Mode,
			"storage":   store.Name(),
		})
	}
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
	})
}
