package api

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BennoAlif/cats-social/internal/domain"
)

// Common request/response structures. Wire field names are camelCase.

// RegisterUserRequest defines the payload for the user registration endpoint.
type RegisterUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,min=5,max=50"`
	Password string `json:"password" validate:"required,min=5,max=15"`
}

// LoginUserRequest defines the payload for the user login endpoint.
type LoginUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,max=15"`
}

// UserResponse defines the successful response for both user endpoints.
type UserResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// CatPayload defines the body for cat creation and update. Updates are a
// full replace of the mutable fields, so both endpoints share the shape.
type CatPayload struct {
	Name        string   `json:"name"        validate:"required,min=1,max=30"`
	Race        string   `json:"race"        validate:"required,race"`
	Sex         string   `json:"sex"         validate:"required,oneof=male female"`
	AgeInMonth  int32    `json:"ageInMonth"  validate:"required,gte=1,lte=120082"`
	Description string   `json:"description" validate:"required,min=1,max=200"`
	// required fails a nil slice but passes an empty non-nil one, so an
	// absent field is rejected while an explicit [] is allowed.
	ImageURLs []string `json:"imageUrls" validate:"required,image_urls"`
}

// Cat converts the payload into a domain cat owned by userID.
func (p *CatPayload) Cat(userID int32) *domain.Cat {
	return &domain.Cat{
		Name:        p.Name,
		Race:        p.Race,
		Sex:         p.Sex,
		AgeInMonth:  p.AgeInMonth,
		Description: p.Description,
		ImageURLs:   p.ImageURLs,
		UserID:      userID,
	}
}

// CatRecordResponse defines the successful response for cat creation and update.
type CatRecordResponse struct {
	ID        int32     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// CatResponse defines one element of the cat listing response.
// HasMatched is always false at this layer; it is never read from
// storage and is reserved for the matching feature.
type CatResponse struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Race        string    `json:"race"`
	Sex         string    `json:"sex"`
	AgeInMonth  int32     `json:"ageInMonth"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
	HasMatched  bool      `json:"hasMatched"`
}

func catToResponse(cat domain.Cat) CatResponse {
	return CatResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Race:        cat.Race,
		Sex:         cat.Sex,
		AgeInMonth:  cat.AgeInMonth,
		Description: cat.Description,
		ImageURLs:   cat.ImageURLs,
		CreatedAt:   cat.CreatedAt,
		HasMatched:  false,
	}
}

// newValidator builds the request validator with the custom rules the
// cat payload needs: the closed breed set and per-element URL checks.
// Field names in error messages come from the json tags.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "race", func(fl validator.FieldLevel) bool {
		return domain.ValidRace(fl.Field().String())
	})
	mustRegister(v, "image_urls", func(fl validator.FieldLevel) bool {
		urls, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		for _, raw := range urls {
			if !domain.ValidImageURL(raw) {
				return false
			}
		}
		return true
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		// ALLOW-PANIC: registration only fails on a nil func or empty tag
		panic(err)
	}
}
