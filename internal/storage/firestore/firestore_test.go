package firestore

import (
	"context"
	"os"
	"testing"

	"fanhub-go/internal/config"
	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/storagetest"
	"fanhub-go/pkg/logger"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

func TestMain(m *testing.M) {
	if err := logger.Init("warn", "console", "stdout", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// 需要一个 Firestore 项目（推荐模拟器，FIRESTORE_EMULATOR_HOST + 任意项目ID），
// 通过 TEST_FIRESTORE_PROJECT 指定；未配置时跳过，
// 契约语义由内存适配器测试兜底
func TestFirestoreStorageContract(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT not set, skipping firestore contract test")
	}

	ctx := context.Background()
	cfg := &config.FirebaseConfig{
		ProjectID:       projectID,
		CredentialsFile: os.Getenv("TEST_FIRESTORE_CREDENTIALS"),
	}

	store, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	storagetest.Run(t, func(t *testing.T) storage.Storage {
		clearAll(t, store)
		return store
	})
}

func clearAll(t *testing.T, store *Store) {
	t.Helper()

	ctx := context.Background()
	collections := []string{
		colUsers, colVideos, colDownloads, colNotifications,
		colSubscribers, colSiteSettings, colComments, colCounters,
	}

	for _, col := range collections {
		iter := store.client.Collection(col).Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			require.NoError(t, err)
			_, err = doc.Ref.Delete(ctx)
			require.NoError(t, err)
		}
	}
}
