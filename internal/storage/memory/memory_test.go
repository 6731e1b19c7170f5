package memory_test

import (
	"testing"

	"fanhub-go/internal/storage"
	"fanhub-go/internal/storage/memory"
	"fanhub-go/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorageContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return memory.New()
	})
}

func TestMemoryStorageName(t *testing.T) {
	store := memory.New()
	assert.Equal(t, "memory", store.Name())
	assert.NoError(t, store.Close())
}
