package cache

import (
	"context"
	"sync"
	"time"

	"recgen/internal/infrastructure/config"
)

type memoryEntry struct {
	value      string
	expiresAt  time.Time
	lastAccess time.Time
}

// memoryStore 進程內快取，帶 TTL 與簡單 LRU 淘汰
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	maxSize int
	done    chan struct{}
}

func newMemoryStore(cfg *config.Config) *memoryStore {
	s := &memoryStore{
		entries: make(map[string]*memoryEntry),
		maxSize: cfg.Cache.MaxSize,
		done:    make(chan struct{}),
	}
	go s.cleanupLoop(cfg.Cache.CleanupInterval)
	return s
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return "", false, nil
	}
	entry.lastAccess = time.Now()
	return entry.value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.maxSize {
		s.evictOldest()
	}

	now := time.Now()
	s.entries[key] = &memoryEntry{
		value:      value,
		expiresAt:  now.Add(ttl),
		lastAccess: now,
	}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

func (s *memoryStore) Close() error {
	close(s.done)
	return nil
}

// evictOldest 淘汰最久未使用的條目，呼叫端需持有鎖
func (s *memoryStore) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for key, entry := range s.entries {
		if oldestKey == "" || entry.lastAccess.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastAccess
		}
	}
	if oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}

func (s *memoryStore) cleanupLoop(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.done:
			return
		}
	}
}

func (s *memoryStore) removeExpired() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
