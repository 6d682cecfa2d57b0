package recipe

import (
	"errors"
	"net/http"

	recipeService "recgen/internal/core/recipe"
	"recgen/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜處理程序
type Handler struct {
	recipeService *recipeService.RecipeService
}

// NewHandler 創建新的食譜處理程序
func NewHandler(recipeService *recipeService.RecipeService) *Handler {
	return &Handler{
		recipeService: recipeService,
	}
}

// HandleGenerate 依食材與條件生成食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	body, err := c.GetRawData()
	if err != nil {
		common.LogError("讀取請求體失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	req, err := recipeService.ValidateRequest(body)
	if err != nil {
		if common.IsValidationError(err) {
			vErr := err.(*common.RequestValidationError)
			common.LogWarn("請求驗證失敗",
				zap.String("request_id", requestID),
				zap.Int("violations", len(vErr.Violations)),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid request",
				"issues": vErr.Violations,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rec, err := h.recipeService.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		var cErr *common.CustomError
		if errors.As(err, &cErr) {
			c.JSON(cErr.Status, gin.H{
				"error": cErr.Message,
				"code":  cErr.Code,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recipe generation failed"})
		return
	}

	c.JSON(http.StatusOK, recipeService.GenerationResult{
		Request: req,
		Recipe:  rec,
	})
}
