package adminControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	require.NoError(t, db.AutoMigrate(&models.Settings{}))
	return db
}

func settingsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/settings", SetSettings(db))
	r.GET("/settings", GetSettings(db))
	return r
}

func postSettings(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/settings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetSettingsCreatesSingleton(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	w := postSettings(t, r, gin.H{"plateformfee": 10, "gst": 5, "deliveryFee": 20})
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.Settings
	require.NoError(t, db.First(&settings, models.SettingsID).Error)
	assert.Equal(t, 10.0, settings.PlatformFee)
	assert.Equal(t, 5.0, settings.GST)
	assert.Equal(t, 20.0, settings.DeliveryFee)
}

func TestSetSettingsPartialUpdateKeepsOtherFields(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Settings{
		ID: models.SettingsID, PlatformFee: 10, GST: 5, DeliveryFee: 20,
	}).Error)
	r := settingsRouter(db)

	w := postSettings(t, r, gin.H{"gst": 18})
	require.Equal(t, http.StatusOK, w.Code)

	var settings models.Settings
	require.NoError(t, db.First(&settings, models.SettingsID).Error)
	assert.Equal(t, 18.0, settings.GST)
	assert.Equal(t, 10.0, settings.PlatformFee)
	assert.Equal(t, 20.0, settings.DeliveryFee)

	// Upserts never grow a second row.
	var count int64
	db.Model(&models.Settings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSetSettingsRequiresAField(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	w := postSettings(t, r, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At least one field is required")
}

func TestGetSettingsDefaultsToZero(t *testing.T) {
	db := setupTestDB(t)
	r := settingsRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["plateformfee"])
	assert.Equal(t, 0.0, data["gst"])
	assert.Equal(t, 0.0, data["deliveryFee"])
}
