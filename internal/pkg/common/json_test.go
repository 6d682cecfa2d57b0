package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: "{\"a\":1}"},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: "{\"a\":1}"},
		{name: "no fence", in: "{\"a\":1}", want: "{\"a\":1}"},
		{name: "surrounding whitespace", in: "  {\"a\":1}  ", want: "{\"a\":1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "bare object", in: `{"a":1}`, want: `{"a":1}`, ok: true},
		{name: "prose around object", in: `Here you go: {"a":1} enjoy!`, want: `{"a":1}`, ok: true},
		{name: "nested objects", in: `x {"a":{"b":{"c":1}}} y`, want: `{"a":{"b":{"c":1}}}`, ok: true},
		{name: "braces inside strings ignored", in: `{"a":"}{"}`, want: `{"a":"}{"}`, ok: true},
		{name: "escaped quote inside string", in: `{"a":"say \"}\" ok"}`, want: `{"a":"say \"}\" ok"}`, ok: true},
		{name: "unbalanced object", in: `{"a":1`, want: "", ok: false},
		{name: "no object", in: "sorry, no recipe today", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteJSONKeys(t *testing.T) {
	assert.Equal(t, `{"a": 1, "b": "x"}`, QuoteJSONKeys(`{a: 1, b: "x"}`))
	// 已加引號的鍵不受影響
	assert.Equal(t, `{"a": 1}`, QuoteJSONKeys(`{"a": 1}`))
}

func TestParseModelJSON(t *testing.T) {
	t.Run("strict json", func(t *testing.T) {
		v, err := ParseModelJSON(`{"recipe":{"name":"Soup"}}`)
		require.NoError(t, err)
		m, ok := v.(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, m, "recipe")
	})

	t.Run("fenced json", func(t *testing.T) {
		v, err := ParseModelJSON("```json\n{\"name\":\"Soup\"}\n```")
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("prose wrapped json", func(t *testing.T) {
		v, err := ParseModelJSON(`Sure! Here is your recipe: {"name":"Soup","servings":2} Bon appétit.`)
		require.NoError(t, err)
		m, ok := v.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Soup", m["name"])
	})

	t.Run("unquoted keys repaired", func(t *testing.T) {
		v, err := ParseModelJSON(`{name: "Soup", servings: 2}`)
		require.NoError(t, err)
		m, ok := v.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Soup", m["name"])
	})

	t.Run("gibberish fails", func(t *testing.T) {
		_, err := ParseModelJSON("I cannot help with that.")
		assert.Error(t, err)
	})
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces to underscores", in: "Thai Green Curry", want: "Thai_Green_Curry.json"},
		{name: "collapses runs of whitespace", in: "Miso  \t Soup", want: "Miso_Soup.json"},
		{name: "empty name falls back", in: "", want: "recipe.json"},
		{name: "whitespace only falls back", in: "   ", want: "recipe.json"},
		{name: "trims edges", in: "  Pho  ", want: "Pho.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFilename(tt.in))
		})
	}
}
