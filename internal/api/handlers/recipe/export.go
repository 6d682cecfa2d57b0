package recipe

import (
	"fmt"
	"net/http"

	recipeService "recgen/internal/core/recipe"
	"recgen/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleExport 將生成結果打包為可下載的 JSON 檔案
func (h *Handler) HandleExport(c *gin.Context) {
	var result recipeService.GenerationResult
	if err := c.ShouldBindJSON(&result); err != nil {
		common.LogWarn("匯出請求格式無效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if result.Recipe == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe is required"})
		return
	}

	data, err := common.ToPrettyJSON(result)
	if err != nil {
		common.LogError("匯出序列化失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	filename := common.ExportFilename(result.Recipe.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}
