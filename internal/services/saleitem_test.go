package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

func (env *testEnv) mustSaleWithItem(t *testing.T, tag string, quantity int, unitPrice float64) (*types.Sale, *types.Product) {
	t.Helper()
	refs := env.mustSaleRefs(t, tag)
	product := env.mustProduct(t, "item product "+tag, unitPrice)
	sale, err := env.sales.Create(context.Background(), CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		Items:            []SaleItemInput{{ProductID: product.ID, Quantity: quantity, UnitPrice: unitPrice}},
	})
	require.NoError(t, err)
	return sale, product
}

func TestSaleItemBuildValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.mustProduct(t, "Valid Game", 100)

	_, err := env.saleItems.Build(ctx, nil, SaleItemInput{ProductID: uuid.New(), Quantity: 1, UnitPrice: 100})
	require.Error(t, err)
	assert.EqualError(t, err, "product not found")

	_, err = env.saleItems.Build(ctx, nil, SaleItemInput{ProductID: product.ID, Quantity: 0, UnitPrice: 100})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "minimum quantity is 1")

	_, err = env.saleItems.Build(ctx, nil, SaleItemInput{ProductID: product.ID, Quantity: 1, UnitPrice: -5})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "unit price must not be negative")

	item, err := env.saleItems.Build(ctx, nil, SaleItemInput{ProductID: product.ID, Quantity: 4, UnitPrice: 250})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, item.Subtotal)
	// Build never persists.
	var count int64
	require.NoError(t, env.db.Model(&types.SaleItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaleItemPatchRecomputesSubtotalAndSaleTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sale, _ := env.mustSaleWithItem(t, "patch", 2, 1000)
	require.Equal(t, 2000.0, sale.Total)
	itemID := sale.Items[0].ID

	newQuantity := 5
	patched, err := env.saleItems.Patch(ctx, itemID, SaleItemPatch{Quantity: &newQuantity})
	require.NoError(t, err)
	assert.Equal(t, 5, patched.Quantity)
	assert.Equal(t, 1000.0, patched.UnitPrice)
	assert.Equal(t, 5000.0, patched.Subtotal)

	reloaded, err := env.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, reloaded.Total)
}

func TestSaleItemPatchRejectsInvalidValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sale, _ := env.mustSaleWithItem(t, "reject", 1, 400)
	itemID := sale.Items[0].ID

	zero := 0
	_, err := env.saleItems.Patch(ctx, itemID, SaleItemPatch{Quantity: &zero})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	negative := -1.0
	_, err = env.saleItems.Patch(ctx, itemID, SaleItemPatch{UnitPrice: &negative})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	// The item is untouched after rejected patches.
	item, err := env.saleItems.GetByID(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 400.0, item.UnitPrice)
}

func TestSaleItemDeleteRecalculatesSaleTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sale, _ := env.mustSaleWithItem(t, "delete", 3, 200)
	require.Equal(t, 600.0, sale.Total)
	itemID := sale.Items[0].ID

	require.NoError(t, env.saleItems.Delete(ctx, itemID))

	_, err := env.saleItems.GetByID(ctx, itemID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	reloaded, err := env.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reloaded.Total)
}

func TestProductDeleteBlockedBySaleItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, product := env.mustSaleWithItem(t, "guard", 1, 150)

	err := env.products.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}
