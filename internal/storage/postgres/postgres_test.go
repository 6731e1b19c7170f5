package postgres

import (
	"os"
	"strconv"
	"testing"

	"fanhub-go/internal/config"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/storagetest"
	"fanhub-go/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("warn", "console", "stdout", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// 需要一个真实的 PostgreSQL 实例，通过 TEST_PG_HOST 等环境变量指定；
// 未配置时跳过，契约语义由内存适配器测试兜底
func TestPostgresStorageContract(t *testing.T) {
	host := os.Getenv("TEST_PG_HOST")
	if host == "" {
		t.Skip("TEST_PG_HOST not set, skipping postgres contract test")
	}

	port, err := strconv.Atoi(envOr("TEST_PG_PORT", "5432"))
	require.NoError(t, err)

	cfg := &config.DatabaseConfig{
		Host:            host,
		Port:            port,
		User:            envOr("TEST_PG_USER", "postgres"),
		Password:        os.Getenv("TEST_PG_PASSWORD"),
		DBName:          envOr("TEST_PG_DBNAME", "fanhub_test"),
		SSLMode:         envOr("TEST_PG_SSLMODE", "disable"),
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 300,
	}

	store, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	storagetest.Run(t, func(t *testing.T) storage.Storage {
		truncateAll(t, store)
		return store
	})
}

func truncateAll(t *testing.T, store *Store) {
	t.Helper()

	err := store.db.Exec(
		"TRUNCATE users, videos, downloads, notifications, subscribers, site_settings, comments RESTART IDENTITY CASCADE",
	).Error
	require.NoError(t, err)
}
