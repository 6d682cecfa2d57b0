package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestFindAllergenConflicts(t *testing.T) {
	rec := &Recipe{
		Ingredients: []Ingredient{
			{Name: "Dairy-free cream"},
			{Name: "Peanut oil"},
			{Name: "Salt"},
		},
	}

	t.Run("case insensitive substring match", func(t *testing.T) {
		conflicts := FindAllergenConflicts(rec, []string{"dairy", "PEANUT"})
		assert.Equal(t, map[string]bool{
			"Dairy-free cream": true,
			"Peanut oil":       true,
		}, conflicts)
	})

	t.Run("no allergens", func(t *testing.T) {
		assert.Empty(t, FindAllergenConflicts(rec, nil))
	})

	t.Run("blank allergen entries ignored", func(t *testing.T) {
		assert.Empty(t, FindAllergenConflicts(rec, []string{"", "   "}))
	})

	t.Run("nil recipe", func(t *testing.T) {
		assert.Empty(t, FindAllergenConflicts(nil, []string{"dairy"}))
	})

	t.Run("only names are matched", func(t *testing.T) {
		r := &Recipe{Ingredients: []Ingredient{
			{Name: "Salt", Prep: strPtr("toasted with peanuts")},
		}}
		assert.Empty(t, FindAllergenConflicts(r, []string{"peanut"}))
	})
}

func TestComputeStepProgress(t *testing.T) {
	t.Run("sums timers against total", func(t *testing.T) {
		rec := &Recipe{
			TotalTimeMin: intPtr(30),
			Instructions: []Instruction{
				{Instruction: "Prep", Timer: strPtr("5 minutes")},
				{Instruction: "Simmer", Timer: strPtr("10-20 minutes")},
				{Instruction: "Plate"},
			},
		}
		progress := ComputeStepProgress(rec)
		assert.Equal(t, 20, progress.CumulativeMinutes)
		assert.True(t, progress.HasRatio)
		assert.InDelta(t, 0.667, progress.Ratio, 0.001)
	})

	t.Run("ratio capped at one", func(t *testing.T) {
		rec := &Recipe{
			TotalTimeMin: intPtr(10),
			Instructions: []Instruction{
				{Instruction: "Braise", Timer: strPtr("45 minutes")},
			},
		}
		progress := ComputeStepProgress(rec)
		assert.Equal(t, 45, progress.CumulativeMinutes)
		assert.Equal(t, 1.0, progress.Ratio)
	})

	t.Run("no total time means no ratio", func(t *testing.T) {
		rec := &Recipe{
			Instructions: []Instruction{
				{Instruction: "Rest", Timer: strPtr("10 minutes")},
			},
		}
		progress := ComputeStepProgress(rec)
		assert.Equal(t, 10, progress.CumulativeMinutes)
		assert.False(t, progress.HasRatio)
		assert.Zero(t, progress.Ratio)
	})

	t.Run("unparseable timers are skipped", func(t *testing.T) {
		rec := &Recipe{
			TotalTimeMin: intPtr(30),
			Instructions: []Instruction{
				{Instruction: "Cook", Timer: strPtr("until golden")},
				{Instruction: "Rest", Timer: strPtr("5 min")},
			},
		}
		assert.Equal(t, 5, ComputeStepProgress(rec).CumulativeMinutes)
	})

	t.Run("nil recipe", func(t *testing.T) {
		progress := ComputeStepProgress(nil)
		assert.Zero(t, progress.CumulativeMinutes)
		assert.False(t, progress.HasRatio)
	})
}
