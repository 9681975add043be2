package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetService handles direct asset mutations. Order-driven status changes
// never come through here; they belong to OrderService.
type AssetService struct {
	db *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService { return &AssetService{db: db} }

type AssetInput struct {
	Name        string
	Code        string
	Category    string
	Quantity    int
	Description string
	ImagePath   string
	Status      models.AssetStatus
}

func (in *AssetInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" {
		return fmt.Errorf("asset name is required: %w", ErrValidation)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}
	return nil
}

// CreateAsset stores a new asset. Status always starts as available; the
// input status field is ignored on create.
func (s *AssetService) CreateAsset(ctx context.Context, in AssetInput) (*models.Asset, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	asset := &models.Asset{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Code:        in.Code,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		Status:      models.AssetAvailable,
	}
	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		return nil, err
	}
	return asset, nil
}

// UpdateAsset edits asset fields. Status may only move along the direct-edit
// edges (idle states only); checked_out can neither be set nor left by hand.
// The write is conditional on the status observed in this transaction, so a
// concurrent checkout makes the edit fail instead of clobbering it.
func (s *AssetService) UpdateAsset(ctx context.Context, id string, in AssetInput) (*models.Asset, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var asset models.Asset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&asset, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("asset %s: %w", id, ErrNotFound)
			}
			return err
		}

		if in.Status == "" {
			in.Status = asset.Status
		}
		if !models.CanEditStatus(asset.Status, in.Status) {
			return fmt.Errorf("cannot edit asset status from %s to %s: %w",
				asset.Status, in.Status, ErrValidation)
		}

		updates := map[string]any{
			"name":        in.Name,
			"code":        in.Code,
			"category":    in.Category,
			"quantity":    in.Quantity,
			"description": in.Description,
			"status":      in.Status,
		}
		if in.ImagePath != "" {
			updates["image_path"] = in.ImagePath
		}
		res := tx.Model(&models.Asset{}).
			Where("id = ? AND status = ?", id, asset.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("asset %s was changed concurrently: %w", id, ErrConflict)
		}

		if in.Status != asset.Status {
			if err := appendAssetLogs(tx, []string{id}, "status_change",
				fmt.Sprintf("edited from %s to %s", asset.Status, in.Status)); err != nil {
				return err
			}
		}

		asset.Name = in.Name
		asset.Code = in.Code
		asset.Category = in.Category
		asset.Quantity = in.Quantity
		asset.Description = in.Description
		asset.Status = in.Status
		if in.ImagePath != "" {
			asset.ImagePath = in.ImagePath
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteAsset removes an asset unless an active order still references it.
func (s *AssetService) DeleteAsset(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.First(&asset, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("asset %s: %w", id, ErrNotFound)
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.Order{}).
			Joins("JOIN order_assets ON order_assets.order_id = orders.id").
			Where("order_assets.asset_id = ? AND orders.status = ?", id, models.OrderActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return fmt.Errorf("asset %s is on an active order: %w", id, ErrConflict)
		}

		if err := tx.Exec("DELETE FROM order_assets WHERE asset_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Asset{}, "id = ?", id).Error
	})
}
