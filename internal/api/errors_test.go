package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/service/auth"
	"github.com/BennoAlif/cats-social/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing token", err: auth.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "unauthorized", err: domain.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "cat not found", err: store.ErrCatNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrCatNotFound), want: http.StatusNotFound},
		{name: "validation", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "invalid age filter", err: domain.ErrInvalidAgeFilter, want: http.StatusBadRequest},
		{name: "password mismatch", err: auth.ErrPasswordMismatch, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "missing token", err: auth.ErrMissingToken, want: "Unauthorized"},
		{name: "expired token", err: auth.ErrExpiredToken, want: "Invalid token"},
		{name: "user not found", err: store.ErrUserNotFound, want: "User not found"},
		{name: "wrapped cat not found", err: fmt.Errorf("lookup: %w", store.ErrCatNotFound), want: "Cat not found"},
		{name: "password mismatch", err: auth.ErrPasswordMismatch, want: "Invalid password"},
		{name: "unknown error hides detail", err: errors.New("pq: connection refused"), want: "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}

	t.Run("validation errors keep their detail", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("%w: %q", domain.ErrInvalidAgeFilter, "old")
		assert.Equal(t, err.Error(), GetSafeErrorMessage(err))
	})
}

func TestFormatValidationErrors(t *testing.T) {
	t.Parallel()

	validate := newValidator()

	t.Run("uses wire field names", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(RegisterUserRequest{
			Email:    "not-an-email",
			Name:     "ab",
			Password: "",
		})
		require.Error(t, err)

		message := FormatValidationErrors(err)
		assert.Contains(t, message, "Field: email")
		assert.Contains(t, message, "Field: name")
		assert.Contains(t, message, "Field: password")
	})

	t.Run("describes the failing rule", func(t *testing.T) {
		t.Parallel()

		payload := validCatPayload()
		payload.Sex = "other"
		err := validate.Struct(payload)
		require.Error(t, err)

		message := FormatValidationErrors(err)
		assert.Contains(t, message, "Field: sex")
		assert.Contains(t, message, "must be one of: male female")
	})

	t.Run("non-validator error gets a generic message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Invalid request", FormatValidationErrors(errors.New("boom")))
	})
}
