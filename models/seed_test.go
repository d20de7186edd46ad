package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedProducts(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Product{}))

	require.NoError(t, SeedProducts(db))

	var count int64
	require.NoError(t, db.Model(&Product{}).Count(&count).Error)
	assert.Greater(t, count, int64(0))

	// Re-running against a populated table must not duplicate the catalog.
	require.NoError(t, SeedProducts(db))
	var again int64
	require.NoError(t, db.Model(&Product{}).Count(&again).Error)
	assert.Equal(t, count, again)

	// Every seeded product satisfies the catalog constraints.
	var products []Product
	require.NoError(t, db.Find(&products).Error)
	for _, p := range products {
		assert.True(t, ValidCategory(string(p.Category)), p.Name)
		assert.GreaterOrEqual(t, p.Price, 0.0, p.Name)
		assert.GreaterOrEqual(t, p.Stock, 0, p.Name)
		assert.NotEmpty(t, p.Images, p.Name)
		assert.GreaterOrEqual(t, p.Rating, 0.0, p.Name)
		assert.LessOrEqual(t, p.Rating, 5.0, p.Name)
	}
}
