package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService owns the order lifecycle and the asset status changes that go
// with it. Every operation runs in one transaction; status flips are
// conditional updates checked via RowsAffected, so two writers racing on the
// same asset cannot both win.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService { return &OrderService{db: db} }

type CreateOrderInput struct {
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
	AssetIDs     []string
}

// CreateOrder checks out every requested asset and creates an active order
// referencing them. All requested assets must exist and be available.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrValidation)
	}
	if len(in.AssetIDs) == 0 {
		return nil, fmt.Errorf("order needs at least one asset: %w", ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("end date %s is before start date %s: %w",
			in.EndDate.Format("2006-01-02"), in.StartDate.Format("2006-01-02"), ErrValidation)
	}

	ids := dedupIDs(in.AssetIDs)
	order := &models.Order{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       models.OrderActive,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assets []models.Asset
		if err := tx.Where("id IN ?", ids).Find(&assets).Error; err != nil {
			return err
		}
		if len(assets) != len(ids) {
			found := make(map[string]struct{}, len(assets))
			for _, a := range assets {
				found[a.ID] = struct{}{}
			}
			for _, id := range ids {
				if _, ok := found[id]; !ok {
					return fmt.Errorf("asset %s does not exist: %w", id, ErrConflict)
				}
			}
		}
		for _, a := range assets {
			if a.Status != models.AssetAvailable {
				return fmt.Errorf("asset %s is %s, not available: %w", a.ID, a.Status, ErrConflict)
			}
		}

		// The flip only wins rows still available at commit time; a
		// concurrent order taking any of them makes the count fall short.
		res := tx.Model(&models.Asset{}).
			Where("id IN ? AND status = ?", ids, models.AssetAvailable).
			Update("status", models.AssetCheckedOut)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return fmt.Errorf("an asset was taken by a concurrent order: %w", ErrConflict)
		}

		order.Assets = assets
		if err := tx.Omit("Assets.*").Create(order).Error; err != nil {
			return err
		}
		return appendAssetLogs(tx, ids, "checkout", "checked out on order "+order.ID)
	})
	if err != nil {
		return nil, err
	}

	for i := range order.Assets {
		order.Assets[i].Status = models.AssetCheckedOut
	}
	return order, nil
}

// ChangeStatus moves an active order to a terminal status and applies the
// matching status to every asset on the order: completed releases assets,
// cancelled parks them for inspection, maintenance_return sends them to
// maintenance. Re-applying the status an order already has is a no-op.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID string, next models.OrderStatus) error {
	target, ok := models.AssetStatusOnTransition(next)
	if !ok {
		return fmt.Errorf("%q is not a reachable order status: %w", next, ErrInvalidTransition)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
			}
			return err
		}
		if order.Status == next {
			return nil
		}
		if order.Status != models.OrderActive {
			return fmt.Errorf("order %s is %s: %w", orderID, order.Status, ErrInvalidTransition)
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, models.OrderActive).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order %s was changed concurrently: %w", orderID, ErrConflict)
		}

		ids, err := orderAssetIDs(tx, orderID)
		if err != nil || len(ids) == 0 {
			return err
		}

		// Assets already in the target state are skipped so a repeated
		// transition cannot double-mutate them.
		var flip []string
		if err := tx.Model(&models.Asset{}).
			Where("id IN ? AND status <> ?", ids, target).
			Pluck("id", &flip).Error; err != nil {
			return err
		}
		if len(flip) == 0 {
			return nil
		}
		if err := tx.Model(&models.Asset{}).
			Where("id IN ?", flip).
			Update("status", target).Error; err != nil {
			return err
		}
		return appendAssetLogs(tx, flip, "status_change",
			fmt.Sprintf("order %s marked %s", orderID, next))
	})
}

// DeleteOrder removes an order. Assets are released back to available only
// when the deleted order is active: a finished order no longer controls its
// assets, and a later order may already have checked them out again.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
			}
			return err
		}

		ids, err := orderAssetIDs(tx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.OrderActive && len(ids) > 0 {
			var flip []string
			if err := tx.Model(&models.Asset{}).
				Where("id IN ? AND status = ?", ids, models.AssetCheckedOut).
				Pluck("id", &flip).Error; err != nil {
				return err
			}
			if len(flip) > 0 {
				if err := tx.Model(&models.Asset{}).
					Where("id IN ? AND status = ?", flip, models.AssetCheckedOut).
					Update("status", models.AssetAvailable).Error; err != nil {
					return err
				}
				if err := appendAssetLogs(tx, flip, "status_change",
					"released by deletion of order "+orderID); err != nil {
					return err
				}
			}
		}

		if err := tx.Exec("DELETE FROM order_assets WHERE order_id = ?", orderID).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND status = ?", orderID, order.Status).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order %s was changed concurrently: %w", orderID, ErrConflict)
		}
		return nil
	})
}

func orderAssetIDs(tx *gorm.DB, orderID string) ([]string, error) {
	var ids []string
	err := tx.Table("order_assets").
		Where("order_id = ?", orderID).
		Pluck("asset_id", &ids).Error
	return ids, err
}

func appendAssetLogs(tx *gorm.DB, assetIDs []string, action, note string) error {
	logs := make([]models.AssetLog, 0, len(assetIDs))
	for _, id := range assetIDs {
		logs = append(logs, models.AssetLog{
			ID:      uuid.NewString(),
			AssetID: id,
			Action:  action,
			Note:    note,
		})
	}
	return tx.Create(&logs).Error
}

func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
