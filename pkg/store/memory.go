package store

import (
	"context"
	"sync"

	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

// Memory is a map-backed Store for tests and demo runs. An optional byte
// budget makes it possible to exercise the store-full path.
type Memory struct {
	mu       sync.RWMutex
	data     map[string][]byte
	maxBytes int
	used     int
}

// NewMemory returns an unbounded in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// NewMemoryWithLimit returns an in-memory store that rejects writes once the
// total stored size would exceed maxBytes.
func NewMemoryWithLimit(maxBytes int) *Memory {
	return &Memory{data: make(map[string][]byte), maxBytes: maxBytes}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, appErrors.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := len(m.data[key])
	if m.maxBytes > 0 && m.used-previous+len(value) > m.maxBytes {
		return appErrors.Clone(appErrors.ErrStoreFull, "")
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	m.used += len(value) - previous
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.used -= len(m.data[key])
	delete(m.data, key)
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string][]byte)
	m.used = 0
	return nil
}
