package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennoAlif/cats-social/internal/config"
)

const testSecret = "test-secret-key-with-32-characters!!"

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()

		_, err := NewTokenService(config.AuthConfig{
			JWTSecret:          "too-short",
			TokenLifetimeHours: 8,
		})
		require.Error(t, err)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := NewTokenService(config.AuthConfig{
			JWTSecret:          testSecret,
			TokenLifetimeHours: 8,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestTokenService(testSecret, 8*time.Hour, func() time.Time { return now })

	identity := Identity{UserID: 42, Email: "owner@example.com"}
	token, err := svc.Generate(context.Background(), identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, *got)
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc := NewTestTokenService(testSecret, 8*time.Hour, func() time.Time { return current })

	token, err := svc.Generate(context.Background(), Identity{UserID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	// Still valid just before the lifetime elapses.
	current = base.Add(8*time.Hour - time.Minute)
	_, err = svc.Validate(context.Background(), token)
	require.NoError(t, err)

	current = base.Add(8*time.Hour + time.Minute)
	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenWrongSigningKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	timeFunc := func() time.Time { return now }

	issuer := NewTestTokenService(testSecret, 8*time.Hour, timeFunc)
	verifier := NewTestTokenService("another-secret-key-32-characters!!!!", 8*time.Hour, timeFunc)

	token, err := issuer.Generate(context.Background(), Identity{UserID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	_, err = verifier.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	t.Parallel()

	svc := NewTestTokenService(testSecret, 8*time.Hour, nil)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := svc.Validate(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}
