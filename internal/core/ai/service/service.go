package service

import (
	"context"
	"fmt"
	"time"

	"recgen/internal/core/ai/cache"
	"recgen/internal/core/ai/provider"
	"recgen/internal/core/ai/queue"
	"recgen/internal/infrastructure/config"
	"recgen/internal/pkg/common"

	"go.uber.org/zap"
)

// Response 生成回應
type Response struct {
	Content string `json:"content"`
	Cached  bool   `json:"cached"`
}

// Service 生成服務，整合快取、隊列與供應商
type Service struct {
	config       *config.Config
	provider     provider.Provider
	queue        *queue.Manager
	cacheManager *cache.Manager
}

// NewService 創建生成服務。cacheManager 可為 nil（快取停用）。
func NewService(cfg *config.Config, p provider.Provider, cacheManager *cache.Manager) (*Service, error) {
	if p == nil {
		return nil, fmt.Errorf("provider is required")
	}

	q := queue.NewManager(cfg, p)
	q.Start()

	return &Service{
		config:       cfg,
		provider:     p,
		queue:        q,
		cacheManager: cacheManager,
	}, nil
}

// ProcessRequest 處理生成請求：先查快取，未命中則入隊等待 worker 處理
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	var cacheKey string
	if s.cacheManager != nil {
		cacheKey = s.cacheManager.Key(prompt)
		if content, found := s.cacheManager.Get(ctx, cacheKey); found {
			common.LogInfo("快取命中", zap.String("key", cacheKey))
			return &Response{Content: content, Cached: true}, nil
		}
	}

	req := &queue.Request{
		Context: ctx,
		Request: &provider.Request{
			Prompt:    prompt,
			MaxTokens: s.config.Gemini.MaxTokens,
		},
		Result: make(chan queue.Result, 1),
	}

	start := time.Now()
	if err := s.queue.Enqueue(req); err != nil {
		return nil, err
	}

	select {
	case result := <-req.Result:
		common.LogAICall(time.Since(start), result.Err)
		if result.Err != nil {
			return nil, result.Err
		}
		if s.cacheManager != nil {
			s.cacheManager.Set(ctx, cacheKey, result.Response.Content)
		}
		return &Response{Content: result.Response.Content}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// QueueStatus 獲取隊列狀態
func (s *Service) QueueStatus() queue.Status {
	return s.queue.Status()
}

// CacheStats 獲取快取統計，快取停用時返回 nil
func (s *Service) CacheStats(ctx context.Context) *cache.Stats {
	if s.cacheManager == nil {
		return nil
	}
	stats := s.cacheManager.GetStats(ctx)
	return &stats
}

// Close 關閉服務
func (s *Service) Close() error {
	s.queue.Close()
	return s.provider.Close()
}
