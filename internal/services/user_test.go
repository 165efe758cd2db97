package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldebenito/gamestore-backend/internal/apperr"
)

func TestUserCreateNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Create(ctx, UserInput{
		Email:     "  Maria.Valdez@Example.COM ",
		Password:  "secret123",
		FirstName: " Maria ",
		LastName:  "Valdez",
		Active:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria.valdez@example.com", user.Email)
	assert.Equal(t, "Maria", user.FirstName)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestUserCreateDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustUser(t, "dup@example.com")

	_, err := env.users.Create(ctx, UserInput{Email: "DUP@example.com", Password: "secret123", Active: true})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestUserCreateRequiredFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, UserInput{Password: "secret123"})
	require.Error(t, err)
	assert.EqualError(t, err, "email is required")

	_, err = env.users.Create(ctx, UserInput{Email: "a@b.com"})
	require.Error(t, err)
	assert.EqualError(t, err, "password is required")
}

func TestUserPatchPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.mustUser(t, "patch@example.com")
	firstName := "Pedro"
	patched, err := env.users.Patch(ctx, user.ID, UserPatch{FirstName: &firstName})
	require.NoError(t, err)
	assert.Equal(t, "Pedro", patched.FirstName)
	assert.Equal(t, "patch@example.com", patched.Email)
}

func TestUserDeleteBlockedByDependents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	refs := env.mustSaleRefs(t, "userguard")
	_, err := env.sales.Create(ctx, CreateSaleInput{
		UserID:           refs.user.ID,
		PaymentMethodID:  refs.paymentMethod.ID,
		ShippingMethodID: refs.shippingMethod.ID,
		StatusID:         refs.status.ID,
	})
	require.NoError(t, err)

	err = env.users.Delete(ctx, refs.user.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// A user with no sales or addresses deletes cleanly.
	free := env.mustUser(t, "free@example.com")
	require.NoError(t, env.users.Delete(ctx, free.ID))
}

func TestAuthLoginAndParseToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, UserInput{
		Email:    "login@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, user.Active)

	token, loggedIn, err := env.auth.Login(ctx, "login@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	require.NotEmpty(t, token)

	userID, err := env.auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustUser(t, "victim@example.com")

	// Unknown email and wrong password fail identically, as an
	// authentication failure rather than a validation one.
	_, _, err := env.auth.Login(ctx, "nobody@example.com", "secret123")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
	assert.True(t, apperr.IsUnauthorized(err))
	assert.False(t, apperr.IsValidation(err))

	_, _, err = env.auth.Login(ctx, "victim@example.com", "wrongpass")
	require.Error(t, err)
	assert.EqualError(t, err, "invalid credentials")
	assert.True(t, apperr.IsUnauthorized(err))
}

func TestAuthParseTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.ParseToken("not-a-token")
	require.Error(t, err)
}
