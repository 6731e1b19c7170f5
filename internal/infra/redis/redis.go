// Package redis 维护进程级 Redis 连接，用于 YouTube 列表等外部数据的缓存。
// 初始化失败不阻止服务启动，相关功能退化为直连上游。
package redis

import (
	"context"
	"fmt"
	"time"

	"fanhub-go/internal/config"
	"fanhub-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// Init 建立 Redis 连接，Ping 失败视为初始化失败
func Init(cfg *config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	client = c
	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
	)
	return nil
}

// Enabled Redis 缓存是否可用
func Enabled() bool {
	return client != nil
}

// Get 返回客户端实例，未初始化时为 nil
func Get() *redis.Client {
	return client
}

// Close 关闭连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
