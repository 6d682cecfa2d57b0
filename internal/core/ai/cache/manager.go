package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"recgen/internal/infrastructure/config"
	"recgen/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 快取後端介面，記憶體與 Redis 實作共用
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Len(ctx context.Context) (int, error)
	Close() error
}

// Stats 快取統計
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// Manager 快取管理器，統一鍵值規則與統計
type Manager struct {
	config *config.Config
	store  Store

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewManager 創建快取管理器，快取停用時返回 nil
func NewManager(cfg *config.Config) (*Manager, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("快取已停用")
		return nil, nil
	}

	var store Store
	var err error
	switch cfg.Cache.Backend {
	case "redis":
		store, err = newRedisStore(cfg)
	default:
		store = newMemoryStore(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache backend: %w", err)
	}

	common.LogInfo("快取管理器初始化完成",
		zap.String("backend", cfg.Cache.Backend),
		zap.Duration("ttl", cfg.Cache.TTL),
		zap.Int("max_size", cfg.Cache.MaxSize),
	)

	return &Manager{
		config: cfg,
		store:  store,
	}, nil
}

// Key 以提示詞內容計算快取鍵
func (m *Manager) Key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "recgen:prompt:" + hex.EncodeToString(sum[:])
}

// Get 查詢快取
func (m *Manager) Get(ctx context.Context, key string) (string, bool) {
	value, found, err := m.store.Get(ctx, key)
	if err != nil {
		common.LogWarn("快取查詢失敗", zap.Error(err), zap.String("key", key))
		return "", false
	}

	m.mu.Lock()
	if found {
		m.hits++
	} else {
		m.misses++
	}
	m.mu.Unlock()

	return value, found
}

// Set 寫入快取，寫入失敗只記錄不中斷請求
func (m *Manager) Set(ctx context.Context, key string, value string) {
	if err := m.store.Set(ctx, key, value, m.config.Cache.TTL); err != nil {
		common.LogWarn("快取寫入失敗", zap.Error(err), zap.String("key", key))
	}
}

// GetStats 獲取快取統計
func (m *Manager) GetStats(ctx context.Context) Stats {
	m.mu.Lock()
	stats := Stats{Hits: m.hits, Misses: m.misses}
	m.mu.Unlock()

	if n, err := m.store.Len(ctx); err == nil {
		stats.Entries = n
	}
	return stats
}

// Close 關閉快取
func (m *Manager) Close() error {
	return m.store.Close()
}
