package repository

import "sync"

// MemoryCache is an in-process CacheRepository used when Redis is not configured.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
	max  int
}

// NewMemoryCache creates a cache holding at most max entries. When full the
// cache is reset; max <= 0 means unbounded.
func NewMemoryCache(max int) *MemoryCache {
	return &MemoryCache{
		data: make(map[string]string),
		max:  max,
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && m.max > 0 && len(m.data) >= m.max {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
