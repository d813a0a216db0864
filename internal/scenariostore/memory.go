package scenariostore

import (
	"strings"
	"sync"
)

// MemoryBackend is a mutex-guarded in-process map. It is the default
// backend for tests and for callers that persist elsewhere.
type MemoryBackend struct {
	mu    sync.RWMutex
	store map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{store: make(map[string]string)}
}

func (b *MemoryBackend) Get(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.store[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store[key] = value
	return nil
}

func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.store, key)
	return nil
}

func (b *MemoryBackend) Keys(prefix string) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.store))
	for k := range b.store {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}
