package selector

import (
	"context"
	"errors"
	"fmt"

	"fanhub-go/internal/config"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/firestore"
	"fanhub-go/internal/storage/memory"
	"fanhub-go/internal/storage/postgres"
	"fanhub-go/pkg/logger"
	"fanhub-go/pkg/utils"
)

// 后端名称常量
const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
	BackendAuto      = "auto"
)

// 默认管理员账号，仅在后端首次初始化时写入
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type factory struct {
	name string
	open func(ctx context.Context) (storage.Storage, error)
}

// Select 按配置选择存储后端。backend 为 auto 时依次尝试
// postgres → firestore → memory，返回第一个连接成功的后端；
// 指定具体后端名时只尝试该后端。选择过程只在启动时执行一次。
func Select(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	factories := []factory{
		{
			name: BackendPostgres,
			open: func(ctx context.Context) (storage.Storage, error) {
				return postgres.New(&cfg.Database)
			},
		},
		{
			name: BackendFirestore,
			open: func(ctx context.Context) (storage.Storage, error) {
				if cfg.Firebase.ProjectID == "" {
					return nil, errors.New("firebase project_id not configured")
				}
				return firestore.New(ctx, &cfg.Firebase)
			},
		},
		{
			name: BackendMemory,
			open: func(ctx context.Context) (storage.Storage, error) {
				return memory.New(), nil
			},
		},
	}

	backend := cfg.Storage.Backend
	if backend == "" {
		backend = BackendAuto
	}

	if backend != BackendAuto {
		for _, f := range factories {
			if f.name != backend {
				continue
			}
			store, err := f.open(ctx)
			if err != nil {
				return nil, fmt.Errorf("storage backend %s unavailable: %w", backend, err)
			}
			logger.Info("Storage backend selected", logger.String("backend", store.Name()))
			return store, seedIfNeeded(ctx, store)
		}
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}

	for _, f := range factories {
		store, err := f.open(ctx)
		if err != nil {
			logger.Warn("Storage backend unavailable, falling back",
				logger.String("backend", f.name),
				logger.Err(err))
			continue
		}
		logger.Info("Storage backend selected", logger.String("backend", store.Name()))
		return store, seedIfNeeded(ctx, store)
	}

	// memory 工厂不会失败，正常情况下到不了这里
	return nil, errors.New("no storage backend available")
}

// seedIfNeeded 对 postgres/memory 后端做初始数据填充；
// firestore 后端容忍文档缺失，不做自动填充
func seedIfNeeded(ctx context.Context, store storage.Storage) error {
	if store.Name() == BackendFirestore {
		return nil
	}
	return seed(ctx, store)
}

// seed 保证新初始化的后端具备最小可用数据：管理员账号与站点设置单例。
// 已有数据时不做任何修改，重复启动幂等。
func seed(ctx context.Context, store storage.Storage) error {
	if err := ensureAdminUser(ctx, store); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if err := ensureSiteSettings(ctx, store); err != nil {
		return fmt.Errorf("seed site settings: %w", err)
	}
	return nil
}

func ensureAdminUser(ctx context.Context, store storage.Storage) error {
	_, err := store.GetUserByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username: defaultAdminUsername,
		Password: hash,
		IsAdmin:  true,
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		return err
	}
	logger.Info("Default admin user created", logger.String("username", defaultAdminUsername))
	return nil
}

func ensureSiteSettings(ctx context.Context, store storage.Storage) error {
	_, err := store.GetSiteSettings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	items := []string{"欢迎来到频道站点！"}
	_, err = store.UpdateSiteSettings(ctx, &storage.SiteSettingsUpdate{
		NewsTickerItems: &items,
	})
	return err
}
