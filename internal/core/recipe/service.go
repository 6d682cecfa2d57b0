package recipe

import (
	"context"
	"fmt"
	"net/http"

	"recgen/internal/core/ai/service"
	"recgen/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeService 食譜生成服務
type RecipeService struct {
	aiService *service.Service
}

// NewRecipeService 創建食譜生成服務
func NewRecipeService(aiService *service.Service) *RecipeService {
	return &RecipeService{
		aiService: aiService,
	}
}

// GenerateRecipe 依驗證後的請求生成正規化食譜。
// 上游失敗、回應無法解析、或解析後無任何食材，都映射為 502 類錯誤。
func (s *RecipeService) GenerateRecipe(ctx context.Context, req *GenerationRequest) (*Recipe, error) {
	payload := buildModelPayload(req)
	payloadJSON, err := common.ToJSON(payload)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalError, "failed to encode request payload", http.StatusInternalServerError, err)
	}

	prompt := buildGenerationPrompt(payloadJSON)

	resp, err := s.aiService.ProcessRequest(ctx, prompt)
	if err != nil {
		common.LogError("生成模型呼叫失敗", zap.Error(err))
		return nil, common.NewError(common.ErrCodeUpstreamUnavailable, "Failed to generate recipe", http.StatusBadGateway, err)
	}

	parsed, err := common.ParseModelJSON(resp.Content)
	if err != nil {
		common.LogError("模型回應解析失敗",
			zap.Error(err),
			zap.Int("content_length", len(resp.Content)),
		)
		return nil, common.NewError(common.ErrCodeUpstreamUnparseable, "Model response was not valid JSON", http.StatusBadGateway, err)
	}

	rec := NormalizeRecipe(parsed)
	if len(rec.Ingredients) == 0 {
		common.LogWarn("模型回應不含任何可用食材", zap.String("recipe_name", rec.Name))
		return nil, common.NewError(common.ErrCodeEmptyRecipe, "Model returned a recipe without ingredients", http.StatusBadGateway,
			fmt.Errorf("normalized recipe has no ingredients"))
	}

	common.LogInfo("食譜生成成功",
		zap.String("recipe_name", rec.Name),
		zap.Int("ingredients", len(rec.Ingredients)),
		zap.Int("instructions", len(rec.Instructions)),
		zap.Bool("cached", resp.Cached),
	)

	return rec, nil
}
