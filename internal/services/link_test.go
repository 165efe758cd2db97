package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
)

func TestLinkPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Elden Throne", 59990)
	genre, err := env.genres.Create(ctx, CatalogInput{Name: "Souls-like", Active: true})
	require.NoError(t, err)

	link, err := env.productGenres.Link(ctx, product.ID, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, link.ProductID)
	assert.Equal(t, genre.ID, link.GenreID)
}

func TestLinkDuplicatePairConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Star Drift", 19990)
	genre, err := env.genres.Create(ctx, CatalogInput{Name: "Space Sim", Active: true})
	require.NoError(t, err)

	_, err = env.productGenres.Link(ctx, product.ID, genre.ID)
	require.NoError(t, err)

	_, err = env.productGenres.Link(ctx, product.ID, genre.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestLinkUnknownEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	genre, err := env.genres.Create(ctx, CatalogInput{Name: "Horror", Active: true})
	require.NoError(t, err)

	_, err = env.productGenres.Link(ctx, uuid.New(), genre.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "product not found")

	product := env.mustProduct(t, "Night Manor", 24990)
	_, err = env.productGenres.Link(ctx, product.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "genre not found")
}

func TestUnlinkIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Pixel Farm", 9990)
	genre, err := env.genres.Create(ctx, CatalogInput{Name: "Simulation", Active: true})
	require.NoError(t, err)

	_, err = env.productGenres.Link(ctx, product.ID, genre.ID)
	require.NoError(t, err)

	require.NoError(t, env.productGenres.Unlink(ctx, product.ID, genre.ID))
	// Second unlink of the same pair is a no-op, not an error.
	require.NoError(t, env.productGenres.Unlink(ctx, product.ID, genre.ID))
}

func TestLinkListByLeft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.mustProduct(t, "Chrono Blade", 39990)
	for _, name := range []string{"Action", "Fantasy"} {
		genre, err := env.genres.Create(ctx, CatalogInput{Name: name, Active: true})
		require.NoError(t, err)
		_, err = env.productGenres.Link(ctx, product.ID, genre.ID)
		require.NoError(t, err)
	}

	links, err := env.productGenres.ListByLeft(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	none, err := env.productGenres.ListByLeft(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
