package models

import (
	_ "embed"
	"encoding/json"
	"log"

	"gorm.io/gorm"
)

//go:embed seed_products.json
var seedCatalog []byte

// SeedProducts loads the bundled catalog into an empty products table.
// Re-running against a populated table is a no-op, so restarts are safe.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(seedCatalog, &payload); err != nil {
		return err
	}

	if err := db.Create(&payload.Products).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded catalog with %d products", len(payload.Products))
	return nil
}
