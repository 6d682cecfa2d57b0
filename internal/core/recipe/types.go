package recipe

// 難度等級
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// 正規化預設值
const (
	DefaultRecipeName = "Untitled Recipe"
	DefaultServings   = 2
)

// PantryIngredient 使用者手邊的食材。
// 名稱可省略，序列化時也必須省略，驗證輸出才能重新通過驗證。
type PantryIngredient struct {
	Name     string      `json:"name,omitempty"`
	Quantity interface{} `json:"quantity,omitempty"` // 字串或數字
	Unit     string      `json:"unit,omitempty"`
	Prep     string      `json:"prep,omitempty"`
}

// GenerationRequest 驗證後的食譜生成請求。
// 驗證通過後即不可變；cuisineB 與 cuisineA 相同時視為未提供。
type GenerationRequest struct {
	Ingredients []PantryIngredient `json:"ingredients"`
	MaxTimeMin  *int               `json:"maxTimeMin,omitempty"`
	Difficulty  string             `json:"difficulty,omitempty"`
	Allergens   []string           `json:"allergens"`
	Dietary     []string           `json:"dietary"`
	CuisineA    string             `json:"cuisineA"`
	CuisineB    *string            `json:"cuisineB,omitempty"`
	Servings    int                `json:"servings"`
}

// Ingredient 正規化後的食譜食材
type Ingredient struct {
	Name          string      `json:"name"`
	Quantity      interface{} `json:"quantity"` // 字串、數字或 null
	Unit          *string     `json:"unit"`
	Prep          *string     `json:"prep"`
	Substitutions []string    `json:"substitutions"`
}

// Instruction 正規化後的步驟
type Instruction struct {
	Step        *int    `json:"step,omitempty"`
	Instruction string  `json:"instruction"`
	Timer       *string `json:"timer"`
}

// Cuisine 主菜系與融合菜系
type Cuisine struct {
	Primary    *string `json:"primary"`
	FusionWith *string `json:"fusion_with"`
}

// Recipe 正規化後的食譜，所有欄位皆有預設值，可直接渲染或匯出。
// 建構後不可變。
type Recipe struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Servings     int                    `json:"servings"`
	Difficulty   string                 `json:"difficulty"`
	TotalTime    *string                `json:"total_time"`
	TotalTimeMin *int                   `json:"total_time_min"`
	Ingredients  []Ingredient           `json:"ingredients"`
	Instructions []Instruction          `json:"instructions"`
	Nutrition    map[string]interface{} `json:"nutrition"`
	SafetyNotes  []string               `json:"safety_notes"`
	GapsToBuy    []string               `json:"gaps_to_buy"`
	DietaryTags  []string               `json:"dietary_tags"`
	Cuisine      Cuisine                `json:"cuisine"`
}

// GenerationResult 回傳給呼叫端的完整結果（請求回聲 + 正規化食譜）
type GenerationResult struct {
	Request *GenerationRequest `json:"request"`
	Recipe  *Recipe            `json:"recipe"`
}
