package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fanhub-go/internal/config"
	"fanhub-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// NotificationEvent 通知创建事件消息体，由 worker 消费后向订阅者分发
type NotificationEvent struct {
	NotificationID int64  `json:"notification_id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	CreatedAt      int64  `json:"created_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// Enabled 生产者是否已初始化（未配置 Kafka 时通知事件直接跳过）
func Enabled() bool {
	return producer != nil
}

// SendNotificationEvent 发送通知创建事件到 Kafka
func SendNotificationEvent(ctx context.Context, topic string, event *NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("notification-%d", event.NotificationID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification event: %w", err)
	}

	logger.Info("Notification event sent",
		zap.Int64("notification_id", event.NotificationID),
		zap.String("topic", topic),
		zap.String("type", event.Type),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
