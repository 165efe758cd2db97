package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
)

func TestCatalogCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.genres.Create(ctx, CatalogInput{Name: "  RPG  ", Active: true, Description: "role playing"})
	require.NoError(t, err)
	assert.Equal(t, "RPG", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)

	loaded, err := env.genres.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "RPG", loaded.Name)
	assert.True(t, loaded.Active)
	assert.Equal(t, "role playing", loaded.Description)
}

func TestCatalogCreateBlankNameRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.genres.Create(context.Background(), CatalogInput{Name: "   ", Active: true})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCatalogCreateDuplicateNameConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.genres.Create(ctx, CatalogInput{Name: "Strategy", Active: true})
	require.NoError(t, err)

	// Uniqueness is case-insensitive.
	_, err = env.genres.Create(ctx, CatalogInput{Name: "strategy", Active: true})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestCatalogPatchAppliesOnlyPresentFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.genres.Create(ctx, CatalogInput{Name: "Shooter", Active: true, Description: "original"})
	require.NoError(t, err)

	newDescription := "updated"
	patched, err := env.genres.Patch(ctx, created.ID, CatalogPatch{Description: &newDescription})
	require.NoError(t, err)

	assert.Equal(t, "Shooter", patched.Name)
	assert.True(t, patched.Active)
	assert.Equal(t, "updated", patched.Description)
}

func TestCatalogPatchBlankNameRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.genres.Create(ctx, CatalogInput{Name: "Puzzle", Active: true})
	require.NoError(t, err)

	blank := ""
	_, err = env.genres.Patch(ctx, created.ID, CatalogPatch{Name: &blank})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCatalogReplaceUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.genres.Replace(context.Background(), uuid.New(), CatalogInput{Name: "Racing", Active: true})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCatalogDeleteBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	genre, err := env.genres.Create(ctx, CatalogInput{Name: "Adventure", Active: true})
	require.NoError(t, err)
	product := env.mustProduct(t, "Uncharted Seas", 29990)

	_, err = env.productGenres.Link(ctx, product.ID, genre.ID)
	require.NoError(t, err)

	err = env.genres.Delete(ctx, genre.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// Still loadable after the rejected delete.
	_, err = env.genres.GetByID(ctx, genre.ID)
	require.NoError(t, err)

	// Removing the reference unblocks the delete.
	require.NoError(t, env.productGenres.Unlink(ctx, product.ID, genre.ID))
	require.NoError(t, env.genres.Delete(ctx, genre.ID))

	_, err = env.genres.GetByID(ctx, genre.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCatalogList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, name := range []string{"Zelda-like", "Arcade", "Metroidvania"} {
		_, err := env.genres.Create(ctx, CatalogInput{Name: name, Active: true})
		require.NoError(t, err)
	}

	results, err := env.genres.List(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	// Listed in name order.
	assert.Equal(t, "Arcade", results[0].Name)
	assert.Equal(t, "Metroidvania", results[1].Name)
	assert.Equal(t, "Zelda-like", results[2].Name)
}
