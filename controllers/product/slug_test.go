package productControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cotton-kurta", slugify("Cotton Kurta"))
	assert.Equal(t, "blue-saree-6m", slugify("  Blue Saree (6m)  "))
	assert.Equal(t, "product", slugify("!!!"))
}

func TestUniqueSlugAppendsCounter(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductVariant{}))

	slug, err := uniqueSlug(db, &models.Product{}, "cotton-kurta")
	require.NoError(t, err)
	assert.Equal(t, "cotton-kurta", slug)

	require.NoError(t, db.Create(&models.Product{Name: "Cotton Kurta", Slug: "cotton-kurta"}).Error)
	slug, err = uniqueSlug(db, &models.Product{}, "cotton-kurta")
	require.NoError(t, err)
	assert.Equal(t, "cotton-kurta-1", slug)

	require.NoError(t, db.Create(&models.Product{Name: "Cotton Kurta", Slug: "cotton-kurta-1"}).Error)
	slug, err = uniqueSlug(db, &models.Product{}, "cotton-kurta")
	require.NoError(t, err)
	assert.Equal(t, "cotton-kurta-2", slug)
}
