package entities

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

// Catalog seeding relies on ON CONFLICT DO NOTHING, which only fires
// when an arbiter constraint exists on (name, measurement_unit).
func TestIngredientUniquePerNameAndUnit(t *testing.T) {
	s, err := schema.Parse(&Ingredient{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	idx, ok := s.ParseIndexes()["idx_ingredient_name_unit"]
	assert.True(t, ok, "composite index on ingredients is missing")
	assert.Equal(t, "UNIQUE", idx.Class)

	columns := make([]string, 0, len(idx.Fields))
	for _, field := range idx.Fields {
		columns = append(columns, field.DBName)
	}
	assert.ElementsMatch(t, []string{"name", "measurement_unit"}, columns)
}
