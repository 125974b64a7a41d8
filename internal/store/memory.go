package store

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Store, used for tests and throwaway servers.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Read(_ context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[path]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(data), nil
}

func (m *Memory) Write(_ context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[path] = slices.Clone(data)
	return nil
}

func (m *Memory) Delete(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[path]; !ok {
		return ErrNotFound
	}
	delete(m.blobs, path)
	return nil
}

func (m *Memory) Close() error { return nil }

// Paths returns every stored path, sorted.
func (m *Memory) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.blobs))
	for p := range m.blobs {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
