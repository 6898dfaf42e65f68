package cart

import (
	"Foodgram-Backend/domain"
	"fmt"
	"sort"
	"strings"
	"time"
)

// AggregateIngredients merges ingredient lines by (name, measurement
// unit) and sums their amounts. Two ingredient records sharing the same
// name and unit collapse into one row even if they are distinct rows in
// the catalog. The result is ordered ascending by name, then by unit,
// so rendering is deterministic regardless of input order.
func AggregateIngredients(lines []domain.IngredientLine) []domain.AggregatedLine {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]int64, len(lines))
	for _, line := range lines {
		totals[key{line.Name, line.MeasurementUnit}] += int64(line.Amount)
	}

	result := make([]domain.AggregatedLine, 0, len(totals))
	for k, total := range totals {
		result = append(result, domain.AggregatedLine{
			Name:            k.name,
			MeasurementUnit: k.unit,
			Total:           total,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].MeasurementUnit < result[j].MeasurementUnit
	})

	return result
}

// RenderShoppingList formats the aggregated rows into the downloadable
// flat-text document. Header and footer both derive from the single
// `now` argument, so the date can never straddle a day boundary within
// one report.
func RenderShoppingList(fullName string, now time.Time, lines []domain.AggregatedLine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Список покупок для: %s\n\n", fullName)
	fmt.Fprintf(&b, "Дата: %s\n\n", now.Format("2006-01-02"))

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, fmt.Sprintf("- %s (%s) - %d", line.Name, line.MeasurementUnit, line.Total))
	}
	b.WriteString(strings.Join(rows, "\n"))

	fmt.Fprintf(&b, "\n\nFoodgram (%d)", now.Year())

	return b.String()
}

// ReportFilename builds the suggested download filename from the
// account's login handle. Usernames are restricted to alphanumerics at
// registration, so the handle is safe to embed verbatim.
func ReportFilename(username string) string {
	return fmt.Sprintf("%s_shopping_list.txt", username)
}
