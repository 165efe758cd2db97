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

func (env *testEnv) mustRegion(t *testing.T, name string) *types.Region {
	t.Helper()
	region, err := env.regions.Create(context.Background(), CatalogInput{Name: name, Active: true})
	require.NoError(t, err)
	return region
}

func TestComunaCreateRequiresRegion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.comunas.Create(context.Background(), ComunaInput{
		RegionID: uuid.New(),
		Name:     "Providencia",
		Active:   true,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "region not found")
}

func TestComunaNameUniquePerRegion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	metropolitana := env.mustRegion(t, "Metropolitana")
	valparaiso := env.mustRegion(t, "Valparaíso")

	_, err := env.comunas.Create(ctx, ComunaInput{RegionID: metropolitana.ID, Name: "San Felipe", Active: true})
	require.NoError(t, err)

	// Same name inside the same region conflicts.
	_, err = env.comunas.Create(ctx, ComunaInput{RegionID: metropolitana.ID, Name: "san felipe", Active: true})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// The same name is fine in a different region.
	_, err = env.comunas.Create(ctx, ComunaInput{RegionID: valparaiso.ID, Name: "San Felipe", Active: true})
	require.NoError(t, err)
}

func TestComunaListByRegion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	region := env.mustRegion(t, "Biobío")
	for _, name := range []string{"Talcahuano", "Concepción"} {
		_, err := env.comunas.Create(ctx, ComunaInput{RegionID: region.ID, Name: name, Active: true})
		require.NoError(t, err)
	}

	comunas, err := env.comunas.ListByRegion(ctx, region.ID)
	require.NoError(t, err)
	require.Len(t, comunas, 2)
	assert.Equal(t, "Concepción", comunas[0].Name)
}

func TestRegionDeleteBlockedByComunas(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	region := env.mustRegion(t, "Los Lagos")
	comuna, err := env.comunas.Create(ctx, ComunaInput{RegionID: region.ID, Name: "Puerto Varas", Active: true})
	require.NoError(t, err)

	err = env.regions.Delete(ctx, region.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	require.NoError(t, env.comunas.Delete(ctx, comuna.ID))
	require.NoError(t, env.regions.Delete(ctx, region.ID))
}

func TestComunaDeleteBlockedByAddresses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	region := env.mustRegion(t, "Atacama")
	comuna, err := env.comunas.Create(ctx, ComunaInput{RegionID: region.ID, Name: "Copiapó", Active: true})
	require.NoError(t, err)
	user := env.mustUser(t, "address-owner@example.com")

	address, err := env.addresses.Create(ctx, AddressInput{
		UserID:   user.ID,
		ComunaID: comuna.ID,
		Street:   "Calle Larga",
		Number:   "123",
	})
	require.NoError(t, err)

	err = env.comunas.Delete(ctx, comuna.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	require.NoError(t, env.addresses.Delete(ctx, address.ID))
	require.NoError(t, env.comunas.Delete(ctx, comuna.ID))
}

func TestAddressCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	region := env.mustRegion(t, "Maule")
	comuna, err := env.comunas.Create(ctx, ComunaInput{RegionID: region.ID, Name: "Talca", Active: true})
	require.NoError(t, err)
	user := env.mustUser(t, "talca@example.com")

	_, err = env.addresses.Create(ctx, AddressInput{UserID: user.ID, ComunaID: comuna.ID, Number: "5"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = env.addresses.Create(ctx, AddressInput{UserID: uuid.New(), ComunaID: comuna.ID, Street: "Uno Sur", Number: "5"})
	require.Error(t, err)
	assert.EqualError(t, err, "user not found")

	created, err := env.addresses.Create(ctx, AddressInput{UserID: user.ID, ComunaID: comuna.ID, Street: "Uno Sur", Number: "5", Extra: "depto 42"})
	require.NoError(t, err)

	listed, err := env.addresses.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}
