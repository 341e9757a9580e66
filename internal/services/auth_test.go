package services

import (
	"context"
	"strings"
	"testing"

	"namematch-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeChars, c), "unexpected character %q", c)
		}
		seen[code] = true
	}
	// 100 draws from a 36^6 keyspace colliding would point at a broken generator.
	assert.Greater(t, len(seen), 95)
}

func TestSignUpAndSignIn(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, "test-secret")
	ctx := context.Background()

	result, err := svc.SignUp(ctx, "alice@example.com", "hunter2hunter2", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.User.ID)
	assert.Len(t, result.User.PartnerCode, 6)
	assert.NotEqual(t, "hunter2hunter2", result.User.PasswordHash)

	// Token resolves back to the user.
	userID, err := svc.ValidateJWT(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)

	// Same email cannot register twice.
	_, err = svc.SignUp(ctx, "alice@example.com", "anotherpassword", "Alice Again")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Sign in with the right and wrong password.
	signedIn, err := svc.SignIn(ctx, "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, signedIn.User.ID)

	_, err = svc.SignIn(ctx, "alice@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.SignIn(ctx, "nobody@example.com", "whatever")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestValidateJWT_Rejects(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), "test-secret")

	_, err := svc.ValidateJWT("not-a-token")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	// Token signed with a different secret.
	other := NewAuthService(newFakeUserStore(), "other-secret")
	token, err := other.GenerateJWT("alice")
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestUpdatePushToken(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, "test-secret")
	ctx := context.Background()

	result, err := svc.SignUp(ctx, "bob@example.com", "password123", "Bob")
	require.NoError(t, err)

	token := "device-token"
	require.NoError(t, svc.UpdatePushToken(ctx, result.User.ID, &token))

	user, err := svc.GetProfile(ctx, result.User.ID)
	require.NoError(t, err)
	require.NotNil(t, user.PushToken)
	assert.Equal(t, "device-token", *user.PushToken)

	// Clearing works too.
	require.NoError(t, svc.UpdatePushToken(ctx, result.User.ID, nil))
	user, err = svc.GetProfile(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Nil(t, user.PushToken)
}
