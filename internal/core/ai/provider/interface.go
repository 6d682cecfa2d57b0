package provider

import (
	"context"
	"time"
)

// Request 表示發送到生成模型供應商的請求
type Request struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

// Usage 使用量信息
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response 表示從供應商收到的回應
type Response struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// Provider 定義生成模型供應商介面。
// 以依賴注入方式傳入服務層，測試時可替換為假實作。
type Provider interface {
	// Generate 生成回應，單次盡力嘗試，不重試
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel 獲取當前使用的模型名稱
	GetModel() string

	// GetTimeout 獲取請求超時時間
	GetTimeout() time.Duration

	// Close 關閉供應商連接
	Close() error
}
