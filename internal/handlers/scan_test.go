package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newScanTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Asset{}, &models.Order{}, &models.AssetLog{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scan", NewScanHandler(service.NewResolver(db)).Scan)
	return r, db
}

func scanGet(r *gin.Engine, code string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scan?code="+code, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestScanRedirectsToAsset(t *testing.T) {
	r, db := newScanTestRouter(t)
	asset := models.Asset{ID: uuid.NewString(), Name: "Projector", Code: "PRJ-01", Status: models.AssetAvailable}
	require.NoError(t, db.Create(&asset).Error)

	w := scanGet(r, asset.ID)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/assets/view/"+asset.ID, w.Header().Get("Location"))

	// the human-facing code resolves too
	w = scanGet(r, asset.Code)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/assets/view/"+asset.ID, w.Header().Get("Location"))
}

func TestScanRedirectsToOrder(t *testing.T) {
	r, db := newScanTestRouter(t)
	order := models.Order{
		ID:           uuid.NewString(),
		CustomerName: "Nguyen",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 0, 7),
		Status:       models.OrderActive,
	}
	require.NoError(t, db.Create(&order).Error)

	w := scanGet(r, order.ID)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/orders/view/"+order.ID, w.Header().Get("Location"))
}

func TestScanUnknownCode(t *testing.T) {
	r, _ := newScanTestRouter(t)

	w := scanGet(r, "nothing")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestScanEmptyCode(t *testing.T) {
	r, _ := newScanTestRouter(t)

	w := scanGet(r, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
