package entities

import (
	"github.com/google/uuid"
)

// Ingredient is unique per (name, measurement unit) pair; the same
// name may exist with different units. The index also backs the
// name-prefix search and keeps catalog seeding idempotent.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `gorm:"size:128;uniqueIndex:idx_ingredient_name_unit" json:"name"`
	MeasurementUnit string    `gorm:"size:64;uniqueIndex:idx_ingredient_name_unit" json:"measurement_unit"`

	Timestamp
}
