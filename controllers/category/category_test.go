package categoryControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MainCategory{}, &models.SubCategory{}))
	return db
}

func categoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/sub-categories/:id", GetSubCategoryByID(db))
	r.PUT("/sub-categories/:id", UpdateSubCategory(db))
	return r
}

func seedSubCategory(t *testing.T, db *gorm.DB) models.SubCategory {
	t.Helper()
	main := models.MainCategory{Name: "Clothing", Slug: "clothing"}
	require.NoError(t, db.Create(&main).Error)
	sub := models.SubCategory{Name: "Kurtas", Slug: "kurtas", MainCategoryID: main.ID}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

func TestGetSubCategoryByIDIncludesParent(t *testing.T) {
	db := setupTestDB(t)
	sub := seedSubCategory(t, db)
	r := categoryRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/sub-categories/"+strconv.Itoa(int(sub.ID)), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	got := body["subCategory"].(map[string]interface{})
	assert.Equal(t, "Kurtas", got["name"])
	parent := got["mainCategory"].(map[string]interface{})
	assert.Equal(t, "Clothing", parent["name"])
}

func TestGetSubCategoryByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := categoryRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/sub-categories/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSubCategoryRenameRegeneratesSlug(t *testing.T) {
	db := setupTestDB(t)
	sub := seedSubCategory(t, db)
	r := categoryRouter(db)

	raw, err := json.Marshal(gin.H{"name": "Silk Kurtas"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/sub-categories/"+strconv.Itoa(int(sub.ID)), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.SubCategory
	require.NoError(t, db.First(&updated, sub.ID).Error)
	assert.Equal(t, "Silk Kurtas", updated.Name)
	assert.Equal(t, "silk-kurtas", updated.Slug)
}

func TestUpdateSubCategoryRejectsUnknownParent(t *testing.T) {
	db := setupTestDB(t)
	sub := seedSubCategory(t, db)
	r := categoryRouter(db)

	raw, err := json.Marshal(gin.H{"mainCategoryId": 999})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/sub-categories/"+strconv.Itoa(int(sub.ID)), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Main category not found")
}
