package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is a typed in-memory store with per-entry expiry
type Memory[T any] struct {
	cache *gocache.Cache
}

// NewMemory creates a store. Entries expire after defaultTTL; expired
// entries are purged every cleanupInterval.
func NewMemory[T any](defaultTTL, cleanupInterval time.Duration) *Memory[T] {
	return &Memory[T]{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value
func (m *Memory[T]) Get(key string) (T, bool) {
	var zero T
	val, found := m.cache.Get(key)
	if !found {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores a value with the default TTL
func (m *Memory[T]) Set(key string, value T) {
	m.cache.SetDefault(key, value)
}

// GetOrAdd returns the stored value for key, or stores and returns the value
// built by create. Concurrent callers for the same key all receive the
// value that was stored first.
func (m *Memory[T]) GetOrAdd(key string, create func() T) T {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := create()
	if err := m.cache.Add(key, v, gocache.DefaultExpiration); err != nil {
		// Lost the race; use the winner
		if existing, ok := m.Get(key); ok {
			return existing
		}
	}
	return v
}

// Touch refreshes the expiry of an existing entry
func (m *Memory[T]) Touch(key string) {
	if v, ok := m.Get(key); ok {
		m.cache.SetDefault(key, v)
	}
}

// Delete removes a value
func (m *Memory[T]) Delete(key string) {
	m.cache.Delete(key)
}
