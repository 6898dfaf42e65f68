package cart

import (
	"Foodgram-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregateIngredients(t *testing.T) {
	t.Run("merges rows sharing name and unit", func(t *testing.T) {
		lines := []domain.IngredientLine{
			{Name: "Яйца", MeasurementUnit: "шт", Amount: 2},
			{Name: "Молоко", MeasurementUnit: "мл", Amount: 200},
			{Name: "Яйца", MeasurementUnit: "шт", Amount: 3},
			{Name: "Молоко", MeasurementUnit: "мл", Amount: 300},
		}

		got := AggregateIngredients(lines)

		assert.Equal(t, []domain.AggregatedLine{
			{Name: "Молоко", MeasurementUnit: "мл", Total: 500},
			{Name: "Яйца", MeasurementUnit: "шт", Total: 5},
		}, got)
	})

	t.Run("same name with different units stays separate", func(t *testing.T) {
		lines := []domain.IngredientLine{
			{Name: "Сахар", MeasurementUnit: "г", Amount: 100},
			{Name: "Сахар", MeasurementUnit: "ст. л.", Amount: 2},
		}

		got := AggregateIngredients(lines)

		assert.Len(t, got, 2)
		assert.Equal(t, "г", got[0].MeasurementUnit)
		assert.Equal(t, "ст. л.", got[1].MeasurementUnit)
	})

	t.Run("order does not depend on input order", func(t *testing.T) {
		forward := []domain.IngredientLine{
			{Name: "Мука", MeasurementUnit: "г", Amount: 400},
			{Name: "Соль", MeasurementUnit: "г", Amount: 5},
			{Name: "Вода", MeasurementUnit: "мл", Amount: 250},
		}
		backward := []domain.IngredientLine{
			{Name: "Вода", MeasurementUnit: "мл", Amount: 250},
			{Name: "Соль", MeasurementUnit: "г", Amount: 5},
			{Name: "Мука", MeasurementUnit: "г", Amount: 400},
		}

		assert.Equal(t, AggregateIngredients(forward), AggregateIngredients(backward))
	})

	t.Run("totals accumulate beyond int32", func(t *testing.T) {
		lines := make([]domain.IngredientLine, 0, 3)
		for i := 0; i < 3; i++ {
			lines = append(lines, domain.IngredientLine{
				Name: "Вода", MeasurementUnit: "мл", Amount: 2_000_000_000,
			})
		}

		got := AggregateIngredients(lines)

		assert.Len(t, got, 1)
		assert.Equal(t, int64(6_000_000_000), got[0].Total)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		assert.Empty(t, AggregateIngredients(nil))
	})
}

func TestRenderShoppingList(t *testing.T) {
	now := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)
	lines := []domain.AggregatedLine{
		{Name: "Молоко", MeasurementUnit: "мл", Total: 500},
		{Name: "Яйца", MeasurementUnit: "шт", Total: 5},
	}

	got := RenderShoppingList("Иван Иванов", now, lines)

	want := "Список покупок для: Иван Иванов\n\n" +
		"Дата: 2026-08-31\n\n" +
		"- Молоко (мл) - 500\n" +
		"- Яйца (шт) - 5\n\n" +
		"Foodgram (2026)"
	assert.Equal(t, want, got)
}

func TestRenderShoppingListUsesSingleClockReading(t *testing.T) {
	// Header date and footer year must come from the same instant.
	now := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)

	got := RenderShoppingList("Анна Петрова", now, []domain.AggregatedLine{
		{Name: "Мука", MeasurementUnit: "г", Total: 400},
	})

	assert.Contains(t, got, "Дата: 2025-12-31")
	assert.Contains(t, got, "Foodgram (2025)")
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "ivan_shopping_list.txt", ReportFilename("ivan"))
}
