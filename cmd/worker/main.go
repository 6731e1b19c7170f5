package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fanhub-go/internal/config"
	infraKafka "fanhub-go/internal/infra/kafka"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/selector"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

// 通知类型到订阅偏好的映射
var typeToPreference = map[string]string{
	model.NotificationTypeVideo:        "videos",
	model.NotificationTypeDownload:     "downloads",
	model.NotificationTypeAnnouncement: "announcements",
}

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	selectCtx, selectCancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := selector.Select(selectCtx, cfg)
	selectCancel()
	if err != nil {
		logger.Fatal("Failed to select storage backend", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["notification"]
	groupID := "fanhub-notification-worker"

	logger.Info("Notification worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("storage", store.Name()),
	)

	handler := func(event *infraKafka.NotificationEvent) error {
		return dispatch(ctx, store, event)
	}

	infraKafka.StartNotificationConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}

// dispatch 把通知事件分发给订阅了对应类型的订阅者。
// 当前投递方式是结构化日志（邮件网关对接预留在此处）
func dispatch(ctx context.Context, store storage.Storage, event *infraKafka.NotificationEvent) error {
	subscribers, err := store.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	preference := typeToPreference[event.Type]
	delivered := 0
	for i := range subscribers {
		sub := &subscribers[i]
		if sub.NotificationType != "all" && sub.NotificationType != preference {
			continue
		}

		logger.Info("Notification delivered",
			zap.Int64("notification_id", event.NotificationID),
			zap.String("type", event.Type),
			zap.String("email", sub.Email),
			zap.String("title", event.Title),
		)
		delivered++
	}

	logger.Info("Notification dispatch completed",
		zap.Int64("notification_id", event.NotificationID),
		zap.Int("subscribers", len(subscribers)),
		zap.Int("delivered", delivered),
	)
	return nil
}
