package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BennoAlif/cats-social/internal/api/shared"
	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/service/auth"
	"github.com/BennoAlif/cats-social/internal/store"
)

// MapErrorToStatusCode translates domain, store and auth errors into
// HTTP status codes. Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidRace),
		errors.Is(err, domain.ErrInvalidSex),
		errors.Is(err, domain.ErrInvalidImageURL),
		errors.Is(err, domain.ErrInvalidAgeFilter),
		errors.Is(err, auth.ErrPasswordMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Domain validation errors carry their own detail; everything
// else maps to a canned message so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrCatNotFound):
		return "Cat not found"
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "Invalid password"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidRace),
		errors.Is(err, domain.ErrInvalidSex),
		errors.Is(err, domain.ErrInvalidImageURL),
		errors.Is(err, domain.ErrInvalidAgeFilter):
		return err.Error()
	default:
		return "An unexpected error occurred"
	}
}

// respondMappedError writes the error envelope with the status and
// message derived from the error taxonomy. fallback replaces the
// generic message on unknown (500) errors so the response still names
// the failed operation.
func respondMappedError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// FormatValidationErrors renders validator failures as a single message
// listing each failing field and what was expected of it.
func FormatValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("Field: %s, Errors: %s", fe.Field(), describeFailure(fe)))
	}
	return strings.Join(parts, ", ")
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "race":
		return "must be a recognized cat breed"
	case "image_urls":
		return "must contain only valid URLs"
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}
