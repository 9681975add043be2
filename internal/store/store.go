package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentdesk/internal/models"
	"rentdesk/internal/service"

	"gorm.io/gorm"
)

// Store is the read side: listing and single-record queries used by the
// handlers. Mutations with invariants live in internal/service.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

type AssetFilter struct {
	Search   string // substring match on name
	Category string
	Status   models.AssetStatus
}

func (s *Store) ListAssets(ctx context.Context, f AssetFilter) ([]models.Asset, error) {
	q := s.db.WithContext(ctx).Model(&models.Asset{}).Order("created_at desc")
	if t := strings.TrimSpace(f.Search); t != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(t)+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var assets []models.Asset
	err := q.Find(&assets).Error
	return assets, err
}

func (s *Store) AvailableAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	err := s.db.WithContext(ctx).
		Where("status = ?", models.AssetAvailable).
		Order("name asc").
		Find(&assets).Error
	return assets, err
}

// AssetCategories lists the distinct non-empty categories for list filters.
func (s *Store) AssetCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := s.db.WithContext(ctx).Model(&models.Asset{}).
		Distinct("category").
		Where("category <> ''").
		Order("category asc").
		Pluck("category", &cats).Error
	return cats, err
}

func (s *Store) FindAsset(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", id, service.ErrNotFound)
		}
		return nil, err
	}
	return &asset, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Assets").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (s *Store) FindOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Assets").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, service.ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, service.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, service.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListAssetLogs(ctx context.Context, limit int) ([]models.AssetLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var logs []models.AssetLog
	err := s.db.WithContext(ctx).
		Preload("Asset").
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
