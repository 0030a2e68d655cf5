package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestSeedAndLoadCatalog(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedCatalog(db, SeedMenu()))

	items, err := LoadCatalog(db)
	require.NoError(t, err)
	assert.Len(t, items, len(SeedMenu()))
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
	assert.Equal(t, "Paneer Tikka", items[0].Name)
}

func TestSeedCatalogSkipsWhenNotEmpty(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedCatalog(db, SeedMenu()[:2]))
	require.NoError(t, SeedCatalog(db, SeedMenu()))

	items, err := LoadCatalog(db)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLoadCatalogRejectsUnknownType(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedCatalog(db, []models.MenuItem{
		{ID: 1, Name: "Mystery", Price: 100, Type: "vegan", Section: "Starters"},
	}))

	_, err := LoadCatalog(db)
	assert.Error(t, err)
}

func TestSeedMenuSections(t *testing.T) {
	known := make(map[string]bool)
	for _, s := range Sections {
		known[s] = true
	}

	ids := make(map[uint]bool)
	for _, item := range SeedMenu() {
		assert.True(t, known[item.Section], "unknown section %q", item.Section)
		assert.False(t, ids[item.ID], "duplicate id %d", item.ID)
		assert.Greater(t, item.Price, 0)
		ids[item.ID] = true
	}
}
