// Package firestore 提供基于 Firebase/Firestore 的文档存储适配器。
//
// Firestore 没有自增主键，每个集合的整数 ID 由 counters 集合内的计数器文档
// 在事务中分配。推荐视频标识的“清除其他视频”步骤是逐文档写入而非事务，
// 并发管理端写入下只能近似保证唯一性（单管理员场景下可接受，见设计文档）。
package firestore

import (
	"context"
	"fmt"
	"strconv"

	"fanhub-go/internal/config"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// 集合名
const (
	colUsers         = "users"
	colVideos        = "videos"
	colDownloads     = "downloads"
	colNotifications = "notifications"
	colSubscribers   = "subscribers"
	colSiteSettings  = "site_settings"
	colComments      = "comments"
	colCounters      = "counters"

	// 设置单例固定文档 ID
	settingsDocID = "settings"
)

// Store Firestore 存储适配器
type Store struct {
	client *firestore.Client
}

// New 创建 Firestore 客户端并用一次真实读取验证凭证可用。
// 项目未配置或凭证无效时返回错误，由 Selector 降级到下一个后端。
func New(ctx context.Context, cfg *config.FirebaseConfig) (*Store, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firebase project id is not configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	// 客户端创建是惰性的，这里读一次设置文档验证连通性（不存在不算失败）
	_, err = client.Collection(colSiteSettings).Doc(settingsDocID).Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach firestore: %w", err)
	}

	logger.Info("Firestore connected", zap.String("project", cfg.ProjectID))
	return &Store{client: client}, nil
}

func (s *Store) Name() string {
	return "firestore"
}

func (s *Store) Close() error {
	logger.Info("Firestore client closed")
	return s.client.Close()
}

// nextID 在事务内读取-自增-写回集合计数器，返回新分配的整数 ID
func (s *Store) nextID(ctx context.Context, collection string) (int64, error) {
	ref := s.client.Collection(colCounters).Doc(collection)

	var next int64
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		next = 1
		if err == nil {
			if current, err := doc.DataAt("current"); err == nil {
				if v, ok := current.(int64); ok {
					next = v + 1
				}
			}
		}

		return tx.Set(ref, map[string]interface{}{"current": next})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", collection, err)
	}
	return next, nil
}

// docID 整数 ID 作为文档键
func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// wrapNotFound 将 Firestore 的 NotFound 映射为端口级 ErrNotFound
func wrapNotFound(err error) error {
	if status.Code(err) == codes.NotFound {
		return storage.ErrNotFound
	}
	return err
}
