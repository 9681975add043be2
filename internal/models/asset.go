package models

import "time"

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "available"
	AssetCheckedOut  AssetStatus = "checked_out"
	AssetPending     AssetStatus = "pending"
	AssetMaintenance AssetStatus = "maintenance"
)

type Asset struct {
	ID          string      `gorm:"size:36;primaryKey"`
	Name        string      `gorm:"size:255;not null"`
	Code        string      `gorm:"size:120;index"` // human-facing label, not unique
	Category    string      `gorm:"size:100"`
	Quantity    int         `gorm:"not null;default:0"`
	Description string      `gorm:"type:text"`
	ImagePath   string      `gorm:"size:255"`
	Status      AssetStatus `gorm:"type:varchar(20);not null;default:'available'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanEditStatus reports whether a direct edit may move an asset from one
// status to another. checked_out belongs to the order lifecycle: it is never
// a legal edit target, and a checked-out asset's status cannot be edited
// away from under its order.
func CanEditStatus(from, to AssetStatus) bool {
	if to == AssetCheckedOut {
		return false
	}
	if from == to {
		return true
	}
	switch from {
	case AssetAvailable:
		return to == AssetMaintenance
	case AssetPending, AssetMaintenance:
		return to == AssetAvailable
	}
	return false
}
