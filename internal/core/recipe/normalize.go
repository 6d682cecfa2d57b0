package recipe

import (
	"encoding/json"
	"fmt"

	"recgen/internal/core/timeparse"
)

// NormalizeRecipe 將未受信任的模型輸出強制轉為正規化食譜。
// 永不失敗：缺漏或型別錯誤的欄位一律退回預設值，完全空的輸入
// 也會得到最小有效食譜。食譜是否因食材為空而視為生成失敗，
// 由呼叫端判斷。
func NormalizeRecipe(raw interface{}) *Recipe {
	body := asObject(raw)

	// 解開 recipe 外層封套
	if inner := asObject(body["recipe"]); inner != nil {
		body = inner
	}

	rec := &Recipe{
		Name:         asNonEmptyString(body["name"], DefaultRecipeName),
		Description:  asString(body["description"]),
		Servings:     DefaultServings,
		Difficulty:   asNonEmptyString(body["difficulty"], DifficultyBeginner),
		Ingredients:  []Ingredient{},
		Instructions: []Instruction{},
		SafetyNotes:  asStringSlice(body["safety_notes"]),
		GapsToBuy:    asStringSlice(body["gaps_to_buy"]),
		DietaryTags:  asStringSlice(body["dietary_tags"]),
	}

	if n, ok := asInt(body["servings"]); ok {
		rec.Servings = n
	}

	// total_time_min：優先採用模型給的數值，否則由 total_time 字串推導
	totalTimeStr := asStringPtr(body["total_time"])
	if n, ok := asInt(body["total_time_min"]); ok {
		rec.TotalTimeMin = &n
	} else if totalTimeStr != nil {
		if n, ok := timeparse.ParseMinutes(*totalTimeStr); ok {
			rec.TotalTimeMin = &n
		}
	}

	// total_time：優先採用模型字串，否則由分鐘數合成
	if totalTimeStr != nil {
		rec.TotalTime = totalTimeStr
	} else if rec.TotalTimeMin != nil && *rec.TotalTimeMin > 0 {
		s := fmt.Sprintf("%d minutes", *rec.TotalTimeMin)
		rec.TotalTime = &s
	}

	// 食材：逐項防禦性映射，名稱為空者剔除，順序保留
	for _, item := range asSlice(body["ingredients"]) {
		m := asObject(item)
		ing := Ingredient{
			Name:          asString(m["name"]),
			Quantity:      asScalar(m["quantity"]),
			Unit:          asStringPtr(m["unit"]),
			Prep:          asStringPtr(m["prep"]),
			Substitutions: asStringSlice(m["substitutions"]),
		}
		if ing.Name == "" {
			continue
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}

	// 步驟：說明為空者剔除，順序保留
	for _, item := range asSlice(body["instructions"]) {
		m := asObject(item)
		ins := Instruction{
			Instruction: asString(m["instruction"]),
			Timer:       asStringPtr(m["timer"]),
		}
		if n, ok := asInt(m["step"]); ok {
			ins.Step = &n
		}
		if ins.Instruction == "" {
			continue
		}
		rec.Instructions = append(rec.Instructions, ins)
	}

	// 營養資訊為不透明物件，原樣通過
	rec.Nutrition = asObject(body["nutrition"])

	if c := asObject(body["cuisine"]); c != nil {
		rec.Cuisine = Cuisine{
			Primary:    asStringPtr(c["primary"]),
			FusionWith: asStringPtr(c["fusion_with"]),
		}
	}

	return rec
}

// --- 型別強制轉換輔助函數 ---
// 原始輸入一律視為 interface{}，在此集中收斂為正規型別。

// asObject 回傳物件映射，非物件時回傳 nil
func asObject(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// asSlice 回傳陣列，非陣列時回傳 nil
func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

// asString 回傳字串，非字串時回傳空字串
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asNonEmptyString 回傳非空字串，否則回傳預設值
func asNonEmptyString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// asStringPtr 回傳字串指標，非字串時回傳 nil
func asStringPtr(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// asStringSlice 回傳字串陣列，保留順序，剔除非字串元素；非陣列時回傳空陣列
func asStringSlice(v interface{}) []string {
	out := []string{}
	for _, item := range asSlice(v) {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// asScalar 回傳字串或數字純量，其餘型別回傳 nil
func asScalar(v interface{}) interface{} {
	switch v.(type) {
	case string, json.Number, float64, int, int64:
		return v
	}
	return nil
}

// asInt 將數值收斂為整數；非整數數值或非數值回傳 false
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
