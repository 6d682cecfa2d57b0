package recipe

import (
	"strings"

	"recgen/internal/core/timeparse"
)

// StepProgress 步驟累計時間相對於總時間的進度
type StepProgress struct {
	CumulativeMinutes int     `json:"cumulative_minutes"`
	Ratio             float64 `json:"ratio"`
	HasRatio          bool    `json:"has_ratio"`
}

// FindAllergenConflicts 以不分大小寫的子字串比對，找出名稱含過敏原的食材。
// 只比對食材名稱，不比對數量、單位或處理方式。寧可誤報、不可漏報：
// 漏掉過敏原的代價遠高於多餘的警告。
func FindAllergenConflicts(rec *Recipe, allergens []string) map[string]bool {
	conflicts := make(map[string]bool)
	if rec == nil || len(allergens) == 0 {
		return conflicts
	}

	for _, ing := range rec.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, allergen := range allergens {
			a := strings.ToLower(strings.TrimSpace(allergen))
			if a == "" {
				continue
			}
			if strings.Contains(name, a) {
				conflicts[ing.Name] = true
				break
			}
		}
	}
	return conflicts
}

// ComputeStepProgress 加總各步驟計時器的分鐘估計。
// 每步優先採用範圍平均值，否則退回一般時間解析；
// total_time_min 已知且為正時才計算比例，並以 1.0 為上限。
func ComputeStepProgress(rec *Recipe) StepProgress {
	progress := StepProgress{}
	if rec == nil {
		return progress
	}

	for _, ins := range rec.Instructions {
		if ins.Timer == nil {
			continue
		}
		if r := timeparse.ParseRange(*ins.Timer); r != nil {
			progress.CumulativeMinutes += r.Avg
			continue
		}
		if n, ok := timeparse.ParseMinutes(*ins.Timer); ok {
			progress.CumulativeMinutes += n
		}
	}

	if rec.TotalTimeMin != nil && *rec.TotalTimeMin > 0 {
		ratio := float64(progress.CumulativeMinutes) / float64(*rec.TotalTimeMin)
		if ratio > 1.0 {
			ratio = 1.0
		}
		progress.Ratio = ratio
		progress.HasRatio = true
	}

	return progress
}
