package common

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// ExportFilename 由食譜名稱產生下載檔名，空白以底線取代
func ExportFilename(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "recipe"
	}
	return whitespacePattern.ReplaceAllString(trimmed, "_") + ".json"
}
