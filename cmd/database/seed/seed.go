package seed

import (
	"Foodgram-Backend/entities"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed loads reference data (ingredients and tags) from CSV files in
// dataDir. Files are optional; a missing file is skipped silently so
// the application can boot against an already seeded database.
func Seed(db *gorm.DB, dataDir string) error {
	if dataDir == "" {
		return nil
	}

	if err := seedIngredients(db, filepath.Join(dataDir, "ingredients.csv")); err != nil {
		return fmt.Errorf("seeding ingredients: %w", err)
	}
	if err := seedTags(db, filepath.Join(dataDir, "tags.csv")); err != nil {
		return fmt.Errorf("seeding tags: %w", err)
	}
	return nil
}

// ingredients.csv rows: name,measurement_unit
func seedIngredients(db *gorm.DB, path string) error {
	records, err := readCSV(path)
	if err != nil || records == nil {
		return err
	}

	ingredients := make([]entities.Ingredient, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		ingredients = append(ingredients, entities.Ingredient{
			Name:            record[0],
			MeasurementUnit: record[1],
		})
	}
	if len(ingredients) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
		DoNothing: true,
	}).CreateInBatches(ingredients, 500).Error
}

// tags.csv rows: name,slug
func seedTags(db *gorm.DB, path string) error {
	records, err := readCSV(path)
	if err != nil || records == nil {
		return err
	}

	tags := make([]entities.Tag, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		tags = append(tags, entities.Tag{
			Name: record[0],
			Slug: record[1],
		})
	}
	if len(tags) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(tags).Error
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
