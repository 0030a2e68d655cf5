package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
	"gorm.io/gorm"
)

// SeedCatalog menjalankan migrasi menu_items dan mengisi daftar menu bawaan
// jika tabel masih kosong
func SeedCatalog(db *gorm.DB, items []models.MenuItem) error {
	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		return fmt.Errorf("migrate menu_items: %w", err)
	}

	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count menu_items: %w", err)
	}
	if count > 0 {
		utils.InfoLogger.Printf("Catalog already has %d items, skipping seed", count)
		return nil
	}

	if len(items) == 0 {
		return nil
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("seed menu_items: %w", err)
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(items))
	return nil
}

// LoadCatalog membaca seluruh menu sekali, diurutkan berdasarkan id
func LoadCatalog(db *gorm.DB) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load menu_items: %w", err)
	}

	for _, item := range items {
		if item.Type != models.DishVeg && item.Type != models.DishNonVeg {
			return nil, fmt.Errorf("menu item %d has unknown type %q", item.ID, item.Type)
		}
		if item.Price <= 0 {
			return nil, fmt.Errorf("menu item %d has non-positive price %d", item.ID, item.Price)
		}
	}
	return items, nil
}
