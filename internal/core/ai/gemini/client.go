package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"recgen/internal/core/ai/provider"
	"recgen/internal/infrastructure/config"
	"recgen/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client Gemini API 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// generateContentRequest generateContent 請求結構
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

// generateContentResponse generateContent 回應結構
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// NewClient 創建 Gemini 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Gemini.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", cfg.Gemini.APIKey)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Generate 生成回應
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	body := &generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: req.Prompt}}},
		},
	}
	if req.MaxTokens > 0 {
		body.GenerationConfig = &generationConfig{MaxOutputTokens: req.MaxTokens}
	}

	common.LogInfo("Sending request to Gemini",
		zap.String("model", c.config.Gemini.Model),
		zap.Int("prompt_length", len(req.Prompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/models/%s:generateContent", c.config.Gemini.Model))

	if err != nil {
		common.LogError("Failed to send request to Gemini",
			zap.Error(err),
			zap.String("model", c.config.Gemini.Model),
		)
		return nil, fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Gemini returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Gemini.Model),
		)
		return nil, fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result generateContentResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content from Gemini")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return nil, fmt.Errorf("empty content from Gemini")
	}

	common.LogInfo("Successfully generated response from Gemini",
		zap.String("model", c.config.Gemini.Model),
		zap.Int("content_length", len(text)),
		zap.Int("total_tokens", result.UsageMetadata.TotalTokenCount),
	)

	return &provider.Response{
		Content: text,
		Usage: provider.Usage{
			PromptTokens:     result.UsageMetadata.PromptTokenCount,
			CompletionTokens: result.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      result.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

// GetModel 獲取當前使用的模型名稱
func (c *Client) GetModel() string {
	return c.config.Gemini.Model
}

// GetTimeout 獲取請求超時時間
func (c *Client) GetTimeout() time.Duration {
	return c.config.Gemini.Timeout
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
