package recipe

import (
	"fmt"

	"recgen/internal/pkg/common"
)

// 請求範圍限制
const (
	MinTimeMin  = 1
	MaxTimeMin  = 240
	MinServings = 1
	MaxServings = 12
)

// ValidateRequest 驗證原始請求並建構不可變的 GenerationRequest。
// 一次列舉所有違規欄位，讓呼叫端能完整呈現問題；不修改輸入。
// 食材數量為零在此允許（至少一項是 UI 層的要求）。
func ValidateRequest(body []byte) (*GenerationRequest, error) {
	var raw map[string]interface{}
	if err := common.ParseJSONBytes(body, &raw); err != nil || raw == nil {
		return nil, &common.RequestValidationError{Violations: []common.FieldViolation{
			{Field: "body", Message: "request body must be a JSON object"},
		}}
	}

	var violations []common.FieldViolation
	addViolation := func(field, message string) {
		violations = append(violations, common.FieldViolation{Field: field, Message: message})
	}

	req := &GenerationRequest{
		Ingredients: []PantryIngredient{},
		Allergens:   []string{},
		Dietary:     []string{},
		Servings:    DefaultServings,
	}

	// ingredients：必須是物件陣列
	if items, ok := raw["ingredients"]; ok {
		list := asSlice(items)
		if list == nil {
			addViolation("ingredients", "must be an array")
		} else {
			for i, item := range list {
				m := asObject(item)
				if m == nil {
					addViolation(fmt.Sprintf("ingredients[%d]", i), "must be an object")
					continue
				}
				ing := PantryIngredient{}
				if name, present := m["name"]; present {
					s, isString := name.(string)
					if !isString || s == "" {
						addViolation(fmt.Sprintf("ingredients[%d].name", i), "must be a non-empty string")
						continue
					}
					ing.Name = s
				}
				if q, present := m["quantity"]; present && q != nil {
					if s := asScalar(q); s == nil {
						addViolation(fmt.Sprintf("ingredients[%d].quantity", i), "must be a string or number")
					} else {
						ing.Quantity = s
					}
				}
				if u, present := m["unit"]; present && u != nil {
					if s, isString := u.(string); isString {
						ing.Unit = s
					} else {
						addViolation(fmt.Sprintf("ingredients[%d].unit", i), "must be a string")
					}
				}
				if p, present := m["prep"]; present && p != nil {
					if s, isString := p.(string); isString {
						ing.Prep = s
					} else {
						addViolation(fmt.Sprintf("ingredients[%d].prep", i), "must be a string")
					}
				}
				req.Ingredients = append(req.Ingredients, ing)
			}
		}
	} else {
		addViolation("ingredients", "is required")
	}

	// maxTimeMin：存在時必須是 [1,240] 的整數
	if v, ok := raw["maxTimeMin"]; ok && v != nil {
		if n, isInt := asInt(v); !isInt {
			addViolation("maxTimeMin", "must be an integer")
		} else if n < MinTimeMin || n > MaxTimeMin {
			addViolation("maxTimeMin", fmt.Sprintf("must be between %d and %d", MinTimeMin, MaxTimeMin))
		} else {
			req.MaxTimeMin = &n
		}
	}

	// difficulty：存在時必須是列舉值之一
	if v, ok := raw["difficulty"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			addViolation("difficulty", "must be a string")
		} else {
			switch s {
			case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
				req.Difficulty = s
			default:
				addViolation("difficulty", "must be one of Beginner, Intermediate, Advanced")
			}
		}
	}

	// allergens / dietary：存在時必須是字串陣列
	for _, field := range []string{"allergens", "dietary"} {
		v, ok := raw[field]
		if !ok || v == nil {
			continue
		}
		list := asSlice(v)
		if list == nil {
			addViolation(field, "must be an array of strings")
			continue
		}
		values := make([]string, 0, len(list))
		valid := true
		for i, item := range list {
			s, isString := item.(string)
			if !isString {
				addViolation(fmt.Sprintf("%s[%d]", field, i), "must be a string")
				valid = false
				continue
			}
			values = append(values, s)
		}
		if valid {
			if field == "allergens" {
				req.Allergens = values
			} else {
				req.Dietary = values
			}
		}
	}

	// cuisineA：必填非空字串
	if v, ok := raw["cuisineA"]; !ok || v == nil {
		addViolation("cuisineA", "is required")
	} else if s, isString := v.(string); !isString || s == "" {
		addViolation("cuisineA", "must be a non-empty string")
	} else {
		req.CuisineA = s
	}

	// cuisineB：存在時必須是字串或 null；與 cuisineA 相同時視為未提供
	if v, ok := raw["cuisineB"]; ok && v != nil {
		if s, isString := v.(string); !isString {
			addViolation("cuisineB", "must be a string or null")
		} else if s != "" && s != req.CuisineA {
			req.CuisineB = &s
		}
	}

	// servings：存在時必須是 [1,12] 的整數，預設 2
	if v, ok := raw["servings"]; ok && v != nil {
		if n, isInt := asInt(v); !isInt {
			addViolation("servings", "must be an integer")
		} else if n < MinServings || n > MaxServings {
			addViolation("servings", fmt.Sprintf("must be between %d and %d", MinServings, MaxServings))
		} else {
			req.Servings = n
		}
	}

	if len(violations) > 0 {
		return nil, &common.RequestValidationError{Violations: violations}
	}

	return req, nil
}
