package recipe

import (
	"errors"
	"testing"

	"recgen/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var vErr *common.RequestValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	fields := make([]string, 0, len(vErr.Violations))
	for _, v := range vErr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestValidateRequestValid(t *testing.T) {
	body := []byte(`{
		"ingredients": [
			{"name": "chicken thigh", "quantity": 500, "unit": "g"},
			{"name": "basil", "quantity": "a handful", "prep": "torn"}
		],
		"maxTimeMin": 45,
		"difficulty": "Intermediate",
		"allergens": ["peanut"],
		"dietary": ["gluten-free"],
		"cuisineA": "Thai",
		"cuisineB": "Italian",
		"servings": 4
	}`)

	req, err := ValidateRequest(body)
	require.NoError(t, err)

	assert.Len(t, req.Ingredients, 2)
	assert.Equal(t, "chicken thigh", req.Ingredients[0].Name)
	require.NotNil(t, req.MaxTimeMin)
	assert.Equal(t, 45, *req.MaxTimeMin)
	assert.Equal(t, DifficultyIntermediate, req.Difficulty)
	assert.Equal(t, []string{"peanut"}, req.Allergens)
	assert.Equal(t, []string{"gluten-free"}, req.Dietary)
	assert.Equal(t, "Thai", req.CuisineA)
	require.NotNil(t, req.CuisineB)
	assert.Equal(t, "Italian", *req.CuisineB)
	assert.Equal(t, 4, req.Servings)
}

func TestValidateRequestDefaults(t *testing.T) {
	req, err := ValidateRequest([]byte(`{"ingredients": [], "cuisineA": "Japanese"}`))
	require.NoError(t, err)

	assert.Empty(t, req.Ingredients)
	assert.Nil(t, req.MaxTimeMin)
	assert.Empty(t, req.Difficulty)
	assert.Equal(t, []string{}, req.Allergens)
	assert.Equal(t, []string{}, req.Dietary)
	assert.Nil(t, req.CuisineB)
	assert.Equal(t, DefaultServings, req.Servings)
}

func TestValidateRequestSameCuisineTreatedAsAbsent(t *testing.T) {
	req, err := ValidateRequest([]byte(`{"ingredients": [], "cuisineA": "Thai", "cuisineB": "Thai"}`))
	require.NoError(t, err)
	assert.Nil(t, req.CuisineB)
}

func TestValidateRequestEnumeratesAllViolations(t *testing.T) {
	body := []byte(`{
		"ingredients": [{"name": ""}, "not an object"],
		"maxTimeMin": 500,
		"difficulty": "Expert",
		"allergens": "peanut",
		"servings": 0
	}`)

	_, err := ValidateRequest(body)
	fields := violationFields(t, err)

	assert.Contains(t, fields, "ingredients[0].name")
	assert.Contains(t, fields, "ingredients[1]")
	assert.Contains(t, fields, "maxTimeMin")
	assert.Contains(t, fields, "difficulty")
	assert.Contains(t, fields, "allergens")
	assert.Contains(t, fields, "cuisineA")
	assert.Contains(t, fields, "servings")
}

func TestValidateRequestFieldTypes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "ingredients not array", body: `{"ingredients": {}, "cuisineA": "Thai"}`, field: "ingredients"},
		{name: "quantity object", body: `{"ingredients": [{"name": "egg", "quantity": {}}], "cuisineA": "Thai"}`, field: "ingredients[0].quantity"},
		{name: "unit number", body: `{"ingredients": [{"name": "egg", "unit": 3}], "cuisineA": "Thai"}`, field: "ingredients[0].unit"},
		{name: "maxTimeMin string", body: `{"ingredients": [], "maxTimeMin": "fast", "cuisineA": "Thai"}`, field: "maxTimeMin"},
		{name: "maxTimeMin fractional", body: `{"ingredients": [], "maxTimeMin": 12.5, "cuisineA": "Thai"}`, field: "maxTimeMin"},
		{name: "difficulty number", body: `{"ingredients": [], "difficulty": 2, "cuisineA": "Thai"}`, field: "difficulty"},
		{name: "dietary element number", body: `{"ingredients": [], "dietary": ["vegan", 7], "cuisineA": "Thai"}`, field: "dietary[1]"},
		{name: "cuisineA empty", body: `{"ingredients": [], "cuisineA": ""}`, field: "cuisineA"},
		{name: "cuisineB number", body: `{"ingredients": [], "cuisineA": "Thai", "cuisineB": 9}`, field: "cuisineB"},
		{name: "servings too large", body: `{"ingredients": [], "cuisineA": "Thai", "servings": 13}`, field: "servings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateRequest([]byte(tt.body))
			assert.Contains(t, violationFields(t, err), tt.field)
		})
	}
}

func TestValidateRequestIdempotent(t *testing.T) {
	bodies := []string{
		// 無名稱的食材是合法的，輸出不得帶出空字串名稱
		`{"ingredients": [{"quantity": 1}], "cuisineA": "Thai"}`,
		`{"ingredients": [{"name": "tofu", "quantity": 200, "unit": "g", "prep": "cubed"}],
		  "maxTimeMin": 30, "difficulty": "Beginner", "allergens": ["soy"], "dietary": [],
		  "cuisineA": "Japanese", "cuisineB": "Peruvian", "servings": 3}`,
		`{"ingredients": [], "cuisineA": "Thai"}`,
	}

	for _, body := range bodies {
		first, err := ValidateRequest([]byte(body))
		require.NoError(t, err, "body=%s", body)

		encoded, err := common.ToJSON(first)
		require.NoError(t, err)

		second, err := ValidateRequest([]byte(encoded))
		require.NoError(t, err, "re-validating output of %s", body)
		assert.Equal(t, first, second)
	}
}

func TestValidateRequestNamelessIngredient(t *testing.T) {
	req, err := ValidateRequest([]byte(`{"ingredients": [{"quantity": 1}], "cuisineA": "Thai"}`))
	require.NoError(t, err)
	require.Len(t, req.Ingredients, 1)
	assert.Empty(t, req.Ingredients[0].Name)

	encoded, err := common.ToJSON(req)
	require.NoError(t, err)
	assert.NotContains(t, encoded, `"name"`)
}

func TestValidateRequestNonObjectBody(t *testing.T) {
	for _, body := range []string{`[]`, `"text"`, `42`, `null`, ``, `{broken`} {
		_, err := ValidateRequest([]byte(body))
		assert.Contains(t, violationFields(t, err), "body", "body=%s", body)
	}
}
