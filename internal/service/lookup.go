package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentdesk/internal/models"

	"gorm.io/gorm"
)

// LookupResult holds exactly one of Asset or Order.
type LookupResult struct {
	Asset *models.Asset
	Order *models.Order
}

// Resolver maps a scanned or typed code to the record it identifies.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{db: db} }

// Resolve tries assets first (by id or code, oldest match wins), then orders
// by id. Codes share one namespace, so the asset-before-order precedence is
// part of the contract.
func (r *Resolver) Resolve(ctx context.Context, code string) (*LookupResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty code: %w", ErrValidation)
	}

	var asset models.Asset
	err := r.db.WithContext(ctx).
		Where("id = ? OR code = ?", code, code).
		Order("created_at asc").
		First(&asset).Error
	if err == nil {
		return &LookupResult{Asset: &asset}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var order models.Order
	err = r.db.WithContext(ctx).First(&order, "id = ?", code).Error
	if err == nil {
		return &LookupResult{Order: &order}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("code %q: %w", code, ErrNotFound)
}
