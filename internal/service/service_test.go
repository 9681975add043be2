package service

import (
	"fmt"
	"testing"

	"rentdesk/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.Order{},
		&models.AssetLog{},
	))
	return db
}

func seedAsset(t *testing.T, db *gorm.DB, status models.AssetStatus) *models.Asset {
	t.Helper()
	a := &models.Asset{
		ID:       uuid.NewString(),
		Name:     "Projector " + uuid.NewString()[:8],
		Code:     "AST-" + uuid.NewString()[:8],
		Category: "av",
		Quantity: 1,
		Status:   status,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func assetStatus(t *testing.T, db *gorm.DB, id string) models.AssetStatus {
	t.Helper()
	var a models.Asset
	require.NoError(t, db.First(&a, "id = ?", id).Error)
	return a.Status
}

func countLogs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.AssetLog{}).Count(&n).Error)
	return n
}

// checkConsistency asserts the two core invariants after a mutation: every
// asset on an active order is checked out, and every checked-out asset is
// referenced by exactly one active order.
func checkConsistency(t *testing.T, db *gorm.DB) {
	t.Helper()

	var orders []models.Order
	require.NoError(t, db.Preload("Assets").Find(&orders).Error)

	activeRefs := map[string]int{}
	for _, o := range orders {
		if o.Status != models.OrderActive {
			continue
		}
		for _, a := range o.Assets {
			require.Equalf(t, models.AssetCheckedOut, a.Status,
				"asset %s on active order %s must be checked out", a.ID, o.ID)
			activeRefs[a.ID]++
		}
	}

	var checkedOut []models.Asset
	require.NoError(t, db.Where("status = ?", models.AssetCheckedOut).Find(&checkedOut).Error)
	for _, a := range checkedOut {
		require.Equalf(t, 1, activeRefs[a.ID],
			"checked-out asset %s must be on exactly one active order", a.ID)
	}
}
