package models

import "time"

type OrderStatus string

const (
	OrderActive            OrderStatus = "active"
	OrderCompleted         OrderStatus = "completed"
	OrderCancelled         OrderStatus = "cancelled"
	OrderMaintenanceReturn OrderStatus = "maintenance_return"
)

// AssetStatusOnTransition maps an order status change to the status every
// asset on that order ends up in. ok is false when next is not a legal
// target of a transition out of active.
func AssetStatusOnTransition(next OrderStatus) (AssetStatus, bool) {
	switch next {
	case OrderCompleted:
		return AssetAvailable, true
	case OrderCancelled:
		return AssetPending, true
	case OrderMaintenanceReturn:
		return AssetMaintenance, true
	}
	return "", false
}

type Order struct {
	ID           string      `gorm:"size:36;primaryKey"`
	CustomerName string      `gorm:"size:255;not null"`
	StartDate    time.Time   `gorm:"not null"`
	EndDate      time.Time   `gorm:"not null"`
	Status       OrderStatus `gorm:"type:varchar(30);not null;default:'active'"`
	Assets       []Asset     `gorm:"many2many:order_assets"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
