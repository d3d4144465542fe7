package storage

import (
	"context"
	"sync"

	"github.com/rafaelleal24/farejador/internal/core/port"
)

// MemoryKeyValue is a process-local KeyValuePort: the standalone
// single-device mode and the test substitute for redis.
type MemoryKeyValue struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKeyValue() port.KeyValuePort {
	return &MemoryKeyValue{values: make(map[string]string)}
}

func (m *MemoryKeyValue) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MemoryKeyValue) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryKeyValue) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
