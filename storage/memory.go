package storage

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps uploads in memory. It is used by tests and exposes
// the stored bytes for assertions. Safe for concurrent use.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string][]byte),
		baseURL: "https://files.test.invalid",
	}
}

func (m *MemoryStorage) Upload(ctx context.Context, fileName, base64Content, folder string) (string, string, error) {
	data, err := DecodeBase64(base64Content)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode upload content: %w", err)
	}

	key := path.Join(folder, uuid.NewString()+"-"+path.Base(fileName))

	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()

	return m.baseURL + "/" + key, key, nil
}

func (m *MemoryStorage) Delete(ctx context.Context, storagePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[storagePath]; !ok {
		return fmt.Errorf("object not found: %s", storagePath)
	}
	delete(m.objects, storagePath)
	return nil
}

// Object returns the stored bytes for a storage path.
func (m *MemoryStorage) Object(storagePath string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[storagePath]
	return data, ok
}
