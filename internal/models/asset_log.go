package models

import "time"

// AssetLog is the append-only audit trail. One row is written, inside the
// same transaction, for every consequential asset status mutation.
type AssetLog struct {
	ID        string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time

	AssetID string `gorm:"size:36;index;not null"`
	Asset   Asset

	Action string `gorm:"size:50;not null"` // "checkout", "status_change", ...
	Note   string `gorm:"type:text"`
}
