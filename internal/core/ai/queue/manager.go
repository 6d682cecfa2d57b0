package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"recgen/internal/core/ai/provider"
	"recgen/internal/infrastructure/config"
	"recgen/internal/pkg/common"

	"go.uber.org/zap"
)

// Request 隊列請求
type Request struct {
	Context context.Context
	Request *provider.Request
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Response *provider.Response
	Err      error
}

// Status 隊列狀態
type Status struct {
	Pending   int   `json:"pending"`
	Workers   int   `json:"workers"`
	Processed int64 `json:"processed"`
}

// Manager 請求隊列管理器，以固定數量的 worker 限制對上游的並發
type Manager struct {
	config    *config.Config
	provider  provider.Provider
	requests  chan *Request
	processed int64

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewManager 創建隊列管理器
func NewManager(cfg *config.Config, p provider.Provider) *Manager {
	return &Manager{
		config:   cfg,
		provider: p,
		requests: make(chan *Request, cfg.Queue.MaxSize),
	}
}

// Start 啟動 worker
func (m *Manager) Start() {
	for i := 0; i < m.config.Queue.Workers; i++ {
		m.wg.Add(1)
		go m.worker(i)
	}
	common.LogInfo("隊列管理器已啟動",
		zap.Int("workers", m.config.Queue.Workers),
		zap.Int("max_size", m.config.Queue.MaxSize),
	)
}

// Enqueue 將請求放入隊列，隊列已滿時立即返回錯誤
func (m *Manager) Enqueue(req *Request) error {
	select {
	case m.requests <- req:
		return nil
	default:
		return fmt.Errorf("request queue is full (max %d)", m.config.Queue.MaxSize)
	}
}

// Status 獲取隊列狀態
func (m *Manager) Status() Status {
	return Status{
		Pending:   len(m.requests),
		Workers:   m.config.Queue.Workers,
		Processed: atomic.LoadInt64(&m.processed),
	}
}

// Close 關閉隊列並等待 worker 結束
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.requests)
	})
	m.wg.Wait()
}

func (m *Manager) worker(id int) {
	defer m.wg.Done()
	for req := range m.requests {
		// 呼叫端可能已放棄等待
		if err := req.Context.Err(); err != nil {
			req.Result <- Result{Err: err}
			continue
		}

		resp, err := m.provider.Generate(req.Context, req.Request)
		atomic.AddInt64(&m.processed, 1)
		if err != nil {
			common.LogWarn("worker 處理請求失敗",
				zap.Int("worker_id", id),
				zap.Error(err),
			)
		}
		req.Result <- Result{Response: resp, Err: err}
	}
}
