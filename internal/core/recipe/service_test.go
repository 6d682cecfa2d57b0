package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"recgen/internal/core/ai/provider"
	"recgen/internal/core/ai/service"
	"recgen/internal/infrastructure/config"
	"recgen/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider 回傳固定內容的假供應商
type stubProvider struct {
	content string
	err     error
}

func (p *stubProvider) Generate(_ context.Context, _ *provider.Request) (*provider.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &provider.Response{Content: p.content}, nil
}

func (p *stubProvider) GetModel() string          { return "stub" }
func (p *stubProvider) GetTimeout() time.Duration { return time.Second }
func (p *stubProvider) Close() error              { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			Model:     "stub",
			MaxTokens: 256,
			Timeout:   time.Second,
		},
		Queue: config.QueueConfig{Workers: 1, MaxSize: 4},
		Cache: config.CacheConfig{Enabled: false},
	}
}

func newTestService(t *testing.T, p provider.Provider) *RecipeService {
	t.Helper()
	aiSvc, err := service.NewService(testConfig(), p, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = aiSvc.Close() })
	return NewRecipeService(aiSvc)
}

func testRequest(t *testing.T) *GenerationRequest {
	t.Helper()
	req, err := ValidateRequest([]byte(`{
		"ingredients": [{"name": "tofu", "quantity": 200, "unit": "g"}],
		"cuisineA": "Japanese"
	}`))
	require.NoError(t, err)
	return req
}

const validModelOutput = `{
	"recipe": {
		"name": "Miso Tofu Bowl",
		"servings": 2,
		"total_time": "25 minutes",
		"ingredients": [{"name": "tofu", "quantity": 200, "unit": "g"}],
		"instructions": [{"step": 1, "instruction": "Press the tofu", "timer": "10 minutes"}]
	}
}`

func errorCode(t *testing.T, err error) (string, int) {
	t.Helper()
	var cErr *common.CustomError
	require.True(t, errors.As(err, &cErr), "expected CustomError, got %v", err)
	return cErr.Code, cErr.Status
}

func TestGenerateRecipeSuccess(t *testing.T) {
	svc := newTestService(t, &stubProvider{content: validModelOutput})

	rec, err := svc.GenerateRecipe(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "Miso Tofu Bowl", rec.Name)
	require.NotNil(t, rec.TotalTimeMin)
	assert.Equal(t, 25, *rec.TotalTimeMin)
	require.Len(t, rec.Ingredients, 1)
	assert.Equal(t, "tofu", rec.Ingredients[0].Name)
}

func TestGenerateRecipeFencedOutput(t *testing.T) {
	svc := newTestService(t, &stubProvider{content: "```json\n" + validModelOutput + "\n```"})

	rec, err := svc.GenerateRecipe(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "Miso Tofu Bowl", rec.Name)
}

func TestGenerateRecipeProseWrappedOutput(t *testing.T) {
	content := "Of course! Here is your recipe:\n" + validModelOutput + "\nEnjoy your meal."
	svc := newTestService(t, &stubProvider{content: content})

	rec, err := svc.GenerateRecipe(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "Miso Tofu Bowl", rec.Name)
}

func TestGenerateRecipeUnparseableOutput(t *testing.T) {
	svc := newTestService(t, &stubProvider{content: "I am sorry, I cannot cook today."})

	_, err := svc.GenerateRecipe(context.Background(), testRequest(t))
	code, status := errorCode(t, err)
	assert.Equal(t, common.ErrCodeUpstreamUnparseable, code)
	assert.Equal(t, 502, status)
}

func TestGenerateRecipeProviderFailure(t *testing.T) {
	svc := newTestService(t, &stubProvider{err: fmt.Errorf("connection refused")})

	_, err := svc.GenerateRecipe(context.Background(), testRequest(t))
	code, status := errorCode(t, err)
	assert.Equal(t, common.ErrCodeUpstreamUnavailable, code)
	assert.Equal(t, 502, status)
}

func TestGenerateRecipeEmptyIngredients(t *testing.T) {
	svc := newTestService(t, &stubProvider{content: `{"recipe": {"name": "Air Soup", "ingredients": []}}`})

	_, err := svc.GenerateRecipe(context.Background(), testRequest(t))
	code, status := errorCode(t, err)
	assert.Equal(t, common.ErrCodeEmptyRecipe, code)
	assert.Equal(t, 502, status)
}

func TestBuildGenerationPrompt(t *testing.T) {
	req := testRequest(t)
	payloadJSON, err := common.ToJSON(buildModelPayload(req))
	require.NoError(t, err)

	prompt := buildGenerationPrompt(payloadJSON)
	assert.True(t, strings.HasSuffix(prompt, payloadJSON))
	assert.Contains(t, prompt, "single JSON object")
	assert.Contains(t, prompt, `"tofu"`)
	assert.Contains(t, prompt, `"primary":"Japanese"`)
}
