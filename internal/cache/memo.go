package cache

import (
	"sync"
)

// Memo remembers computed values by key. Failed computations are not stored.
type Memo[V any] struct {
	mu      sync.Mutex
	entries map[string]V
}

func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

// Get returns the value stored for key, computing and storing it on a miss.
// The second result reports whether the value came from the cache.
// Computations run under the lock, so each key is computed at most once.
func (m *Memo[V]) Get(key string, compute func() (V, error)) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.entries[key]; ok {
		return v, true, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, false, err
	}
	m.entries[key] = v
	return v, false, nil
}

func (m *Memo[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
