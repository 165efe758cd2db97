package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
	"github.com/mvaldebenito/gamestore-backend/internal/types"
)

func TestSaleCreateComputesTotalFromItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "total")
	productA := env.mustProduct(t, "Game A", 1000)
	productB := env.mustProduct(t, "Game B", 500)

	sale, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		Items: []SaleItemInput{
			{ProductID: productA.ID, Quantity: 2, UnitPrice: 1000},
			{ProductID: productB.ID, Quantity: 1, UnitPrice: 500},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2500.0, sale.Total)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, 2000.0, sale.Items[0].Subtotal)
	assert.Equal(t, 500.0, sale.Items[1].Subtotal)
	assert.Equal(t, sale.ID, sale.Items[0].SaleID)

	loaded, err := env.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, loaded.Total)
	assert.Len(t, loaded.Items, 2)
}

func TestSaleCreateResolvesReferencesInOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "order")

	// Everything invalid: the user fails first.
	_, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           uuid.New(),
		PaymentMethodID:  uuid.New(),
		ShippingMethodID: uuid.New(),
		StatusID:         uuid.New(),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")

	// Valid user: the payment method fails next.
	_, err = env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  uuid.New(),
		ShippingMethodID: uuid.New(),
		StatusID:         uuid.New(),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "payment method not found")

	// Then shipping, then status.
	_, err = env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: uuid.New(),
		StatusID:         uuid.New(),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "shipping method not found")

	_, err = env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         uuid.New(),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "status not found")
}

func TestSaleCreateAbortsOnFirstInvalidItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "abort")
	product := env.mustProduct(t, "Game C", 750)

	_, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		Items: []SaleItemInput{
			{ProductID: product.ID, Quantity: 1, UnitPrice: 750},
			{ProductID: product.ID, Quantity: 0, UnitPrice: 750},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "minimum quantity is 1")

	// Nothing was persisted.
	sales, err := env.sales.ListByUser(ctx, refs.user.ID)
	require.NoError(t, err)
	assert.Empty(t, sales)
	var itemCount int64
	require.NoError(t, env.db.Model(&types.SaleItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestSaleCreateDefaultsPurchaseMoment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "moment")
	sale, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), time.Time(sale.PurchaseDate).Format("2006-01-02"))
	assert.Equal(t, 0.0, sale.Total)
}

func TestSaleCreateParsesExplicitPurchaseMoment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "explicit")
	dateStr := "2024-06-15"
	timeStr := "14:30:00"
	sale, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		PurchaseDate:     &dateStr,
		PurchaseTime:     &timeStr,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", time.Time(sale.PurchaseDate).Format("2006-01-02"))

	badDate := "15/06/2024"
	_, err = env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		PurchaseDate:     &badDate,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestSalePatchAppliesOnlyPresentFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "patch")
	sale, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
	})
	require.NoError(t, err)

	newStatus, err := env.statuses.Create(ctx, CatalogInput{Name: "shipped", Active: true})
	require.NoError(t, err)

	patched, err := env.sales.Patch(ctx, sale.ID, PatchSaleInput{StatusID: &newStatus.ID})
	require.NoError(t, err)
	assert.Equal(t, newStatus.ID, patched.StatusID)
	assert.Equal(t, refs.paymentMethod.ID, patched.PaymentMethodID)
	assert.Equal(t, refs.shippingMethod.ID, patched.ShippingMethodID)

	// An unknown reference in a patch is rejected.
	bogus := uuid.New()
	_, err = env.sales.Patch(ctx, sale.ID, PatchSaleInput{PaymentMethodID: &bogus})
	require.Error(t, err)
	assert.EqualError(t, err, "payment method not found")
}

func TestSaleReplaceRequiresAllFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "replace")
	sale, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
	})
	require.NoError(t, err)

	_, err = env.sales.Replace(ctx, sale.ID, ReplaceSaleInput{
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		PurchaseDate:     "2024-01-01",
		PurchaseTime:     "12:00:00",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "payment method is required")

	replaced, err := env.sales.Replace(ctx, sale.ID, ReplaceSaleInput{
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		PurchaseDate:     "2024-01-01",
		PurchaseTime:     "12:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", time.Time(replaced.PurchaseDate).Format("2006-01-02"))
}

func TestSaleDeleteRemovesItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "delete")
	product := env.mustProduct(t, "Game D", 300)
	sale, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
		Items:            []SaleItemInput{{ProductID: product.ID, Quantity: 3, UnitPrice: 300}},
	})
	require.NoError(t, err)

	require.NoError(t, env.sales.Delete(ctx, sale.ID))

	_, err = env.sales.GetByID(ctx, sale.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	var itemCount int64
	require.NoError(t, env.db.Model(&types.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestSaleListByUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "list")
	for i := 0; i < 2; i++ {
		_, err := env.sales.Create(ctx, CreateSaleInput{
			UserID:           refs.user.ID,
			PaymentMethodID:  refs.paymentMethod.ID,
			ShippingMethodID: refs.shippingMethod.ID,
			StatusID:         refs.status.ID,
		})
		require.NoError(t, err)
	}

	sales, err := env.sales.ListByUser(ctx, refs.user.ID)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	_, err = env.sales.ListByUser(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
