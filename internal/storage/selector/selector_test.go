package selector

import (
	"context"
	"os"
	"testing"

	"fanhub-go/internal/config"
	"fanhub-go/pkg/logger"
	"fanhub-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("info", "console", "stdout", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestSelectForcedMemory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = BackendMemory

	store, err := Select(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "memory", store.Name())
}

func TestSelectAutoFallsBackToMemory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = BackendAuto
	// 不可达的数据库端口 + 未配置 Firestore 项目
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 1
	cfg.Database.SSLMode = "disable"

	store, err := Select(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "memory", store.Name())

	// 内存后端要完成初始数据填充
	_, err = store.GetUserByUsername(context.Background(), defaultAdminUsername)
	assert.NoError(t, err)
}

func TestSelectUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = "cassandra"

	_, err := Select(context.Background(), cfg)
	assert.Error(t, err)
}

func TestSelectSeedsAdminAndSettings(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Storage.Backend = BackendMemory

	store, err := Select(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	admin, err := store.GetUserByUsername(ctx, defaultAdminUsername)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, utils.VerifyPassword(defaultAdminPassword, admin.Password))

	settings, err := store.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settings.NewsTickerItems)
}

func TestSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Storage.Backend = BackendMemory

	store, err := Select(ctx, cfg)
	require.NoError(t, err)
	defer store.Close()

	before, err := store.GetUserByUsername(ctx, defaultAdminUsername)
	require.NoError(t, err)

	require.NoError(t, seed(ctx, store))

	after, err := store.GetUserByUsername(ctx, defaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Password, after.Password, "existing admin must not be reseeded")
}
