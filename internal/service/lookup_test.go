package service

import (
	"context"
	"testing"

	"rentdesk/internal/models"

	"github.com/stretchr/testify/require"
)

func TestResolveAssetByID(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	a := seedAsset(t, db, models.AssetAvailable)

	res, err := r.Resolve(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Asset)
	require.Nil(t, res.Order)
	require.Equal(t, a.ID, res.Asset.ID)
}

func TestResolveAssetByCode(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	a := seedAsset(t, db, models.AssetAvailable)

	res, err := r.Resolve(context.Background(), a.Code)
	require.NoError(t, err)
	require.NotNil(t, res.Asset)
	require.Equal(t, a.ID, res.Asset.ID)
}

func TestResolveOrderByID(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	a := seedAsset(t, db, models.AssetAvailable)

	order, err := NewOrderService(db).CreateOrder(context.Background(), validInput(a.ID))
	require.NoError(t, err)

	res, err := r.Resolve(context.Background(), order.ID)
	require.NoError(t, err)
	require.Nil(t, res.Asset)
	require.NotNil(t, res.Order)
	require.Equal(t, order.ID, res.Order.ID)
}

func TestResolveAssetWinsOverOrder(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	a := seedAsset(t, db, models.AssetAvailable)

	order, err := NewOrderService(db).CreateOrder(context.Background(), validInput(a.ID))
	require.NoError(t, err)

	// an asset whose code collides with the order id
	clash := &models.Asset{
		ID:     "clashing-asset",
		Name:   "Clashing asset",
		Code:   order.ID,
		Status: models.AssetAvailable,
	}
	require.NoError(t, db.Create(clash).Error)

	res, err := r.Resolve(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Asset)
	require.Nil(t, res.Order)
	require.Equal(t, clash.ID, res.Asset.ID)
}

func TestResolveNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)

	_, err := r.Resolve(context.Background(), "nothing-here")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEmptyCode(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)

	_, err := r.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, ErrValidation)
}
