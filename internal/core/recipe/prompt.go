package recipe

import (
	"strings"
)

// buildModelPayload 組出送往生成模型的結構化負載
func buildModelPayload(req *GenerationRequest) map[string]interface{} {
	return map[string]interface{}{
		"pantry_ingredients": req.Ingredients,
		"constraints": map[string]interface{}{
			"maxTimeMin": req.MaxTimeMin,
			"difficulty": req.Difficulty,
			"servings":   req.Servings,
		},
		"safety": map[string]interface{}{
			"allergens": req.Allergens,
			"dietary":   req.Dietary,
		},
		"cuisine": map[string]interface{}{
			"primary":     req.CuisineA,
			"fusion_with": req.CuisineB,
		},
	}
}

// buildGenerationPrompt 組合系統指示與使用者負載為單一提示詞。
// 明確列舉目標 JSON 形狀，回應限定為單一 JSON 物件。
func buildGenerationPrompt(payloadJSON string) string {
	var sb strings.Builder
	sb.WriteString("Act as a professional chef and food safety consultant.\n")
	sb.WriteString("Output strictly as a single JSON object with the following shape:\n")
	sb.WriteString("{ \"recipe\": {\n")
	sb.WriteString("  \"name\": string,\n")
	sb.WriteString("  \"description\": string,\n")
	sb.WriteString("  \"servings\": number,\n")
	sb.WriteString("  \"total_time\": string,\n")
	sb.WriteString("  \"difficulty\": \"Beginner\" | \"Intermediate\" | \"Advanced\",\n")
	sb.WriteString("  \"ingredients\": [ { \"name\": string, \"quantity\": string | number | null, \"unit\": string | null, \"prep\": string | null, \"substitutions\": string[] } ],\n")
	sb.WriteString("  \"instructions\": [ { \"step\": number, \"instruction\": string, \"timer\": string | null } ],\n")
	sb.WriteString("  \"nutrition\": { \"calories\": number | null, \"protein\": string | number | null, \"carbohydrates\": string | number | null, \"fat\": string | number | null, \"fiber\": string | number | null } | null,\n")
	sb.WriteString("  \"safety_notes\": string[],\n")
	sb.WriteString("  \"gaps_to_buy\": string[],\n")
	sb.WriteString("  \"dietary_tags\": string[],\n")
	sb.WriteString("  \"cuisine\": { \"primary\": string | null, \"fusion_with\": string | null }\n")
	sb.WriteString("} }\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Respond only with valid JSON. No markdown, no commentary.\n")
	sb.WriteString("- Use primarily the provided ingredients; do not invent extras unless listed in gaps_to_buy.\n")
	sb.WriteString("- If allergens are provided, avoid them and suggest safe substitutions in ingredients.substitutions.\n")
	sb.WriteString("- If dietary restrictions provided, make output compatible and reflect tags in dietary_tags.\n")
	sb.WriteString("- Respect maxTimeMin and difficulty with realistic steps and timers.\n")
	sb.WriteString("- Cuisine fusion: primary cuisine is cuisineA; if cuisineB is provided, blend techniques/flavors coherently.\n")
	sb.WriteString("- Include at least 6 instructions with timers where applicable.\n")
	sb.WriteString("- For poultry, include an explicit food safety note on doneness temperature.\n")
	sb.WriteString("\n")
	sb.WriteString("Respond only with a single JSON object. No markdown, no code fences, no explanations.\n")
	sb.WriteString("\n")
	sb.WriteString("User payload:\n")
	sb.WriteString(payloadJSON)
	return sb.String()
}
