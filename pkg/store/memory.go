package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Persistence used by tests and anywhere a
// throwaway store is handy.
type Memory struct {
	mu   sync.RWMutex
	docs map[Key][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: map[Key][]byte{}}
}

func (m *Memory) Exists(key Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.docs[key]
	return ok
}

func (m *Memory) Read(key Key) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(key Key, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.docs[key] = stored
	return nil
}

func (m *Memory) Names(_ context.Context, category string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0)
	for key := range m.docs {
		if key.Category == category {
			names = append(names, key.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (m *Memory) EnsureCategory(string) error {
	return nil
}
