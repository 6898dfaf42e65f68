package recipe

import (
	"Foodgram-Backend/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateComposition(t *testing.T) {
	tagID := uuid.New().String()
	ingredientID := uuid.New().String()

	tests := []struct {
		name    string
		tags    []string
		lines   []domain.RecipeIngredientRequest
		wantErr error
	}{
		{
			name:  "valid composition",
			tags:  []string{tagID},
			lines: []domain.RecipeIngredientRequest{{ID: ingredientID, Amount: 2}},
		},
		{
			name:    "no ingredients",
			tags:    []string{tagID},
			lines:   nil,
			wantErr: domain.ErrNoIngredients,
		},
		{
			name:    "no tags",
			tags:    nil,
			lines:   []domain.RecipeIngredientRequest{{ID: ingredientID, Amount: 2}},
			wantErr: domain.ErrNoTags,
		},
		{
			name:    "duplicate tag",
			tags:    []string{tagID, tagID},
			lines:   []domain.RecipeIngredientRequest{{ID: ingredientID, Amount: 2}},
			wantErr: domain.ErrDuplicateTag,
		},
		{
			name: "duplicate ingredient",
			tags: []string{tagID},
			lines: []domain.RecipeIngredientRequest{
				{ID: ingredientID, Amount: 2},
				{ID: ingredientID, Amount: 3},
			},
			wantErr: domain.ErrDuplicateIngredient,
		},
		{
			name:    "zero amount",
			tags:    []string{tagID},
			lines:   []domain.RecipeIngredientRequest{{ID: ingredientID, Amount: 0}},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateComposition(tt.tags, tt.lines)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateShortCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateShortCode()
		assert.Len(t, code, shortCodeLength)
		assert.NotContains(t, code, "-")
		seen[code] = true
	}
	// hex-of-uuid prefixes should not collide in a small sample
	assert.Len(t, seen, 100)
}
