package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
)

func TestProductCreateResolvesReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	productType, err := env.productTypes.Create(ctx, CatalogInput{Name: "Physical", Active: true})
	require.NoError(t, err)
	classification, err := env.classifications.Create(ctx, CatalogInput{Name: "PEGI 18", Active: true})
	require.NoError(t, err)
	status, err := env.statuses.Create(ctx, CatalogInput{Name: "In Stock", Active: true})
	require.NoError(t, err)

	_, err = env.products.Create(ctx, ProductInput{
		Name:             "Dark Relic",
		Price:            45990,
		ProductTypeID:    uuid.New(),
		ClassificationID: classification.ID,
		StatusID:         status.ID,
		Active:           true,
	})
	require.Error(t, err)
	assert.EqualError(t, err, "product type not found")

	product, err := env.products.Create(ctx, ProductInput{
		Name:             "Dark Relic",
		Price:            45990,
		ProductTypeID:    productType.ID,
		ClassificationID: classification.ID,
		StatusID:         status.ID,
		Metadata:         datatypes.JSON([]byte(`{"edition":"collector"}`)),
		Active:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, 45990.0, product.Price)
	assert.NotEmpty(t, product.Metadata)
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.products.Create(ctx, ProductInput{Name: "  ", Price: 10})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = env.products.Create(ctx, ProductInput{Name: "Negative", Price: -1})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "price must not be negative")
}

func TestProductDuplicateNameConflicts(t *testing.T) {
	env := newTestEnv(t)

	env.mustProduct(t, "Solar Winds", 100)
	product := env.mustProduct(t, "Other Game", 100)

	name := "solar winds"
	_, err := env.products.Patch(context.Background(), product.ID, ProductPatch{Name: &name})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestProductPatchPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Patchable", 1000)

	price := 750.0
	patched, err := env.products.Patch(ctx, product.ID, ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 750.0, patched.Price)
	assert.Equal(t, "Patchable", patched.Name)
	assert.Equal(t, product.ProductTypeID, patched.ProductTypeID)
}

func TestProductDeleteBlockedByGenreLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Linked Game", 500)
	genre, err := env.genres.Create(ctx, CatalogInput{Name: "Roguelike", Active: true})
	require.NoError(t, err)
	_, err = env.productGenres.Link(ctx, product.ID, genre.ID)
	require.NoError(t, err)

	err = env.products.Delete(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	require.NoError(t, env.productGenres.Unlink(ctx, product.ID, genre.ID))
	require.NoError(t, env.products.Delete(ctx, product.ID))

	_, err = env.products.GetByID(ctx, product.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestProductTypeDeleteBlockedByProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Typed Game", 200)

	err := env.productTypes.Delete(ctx, product.ProductTypeID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}
