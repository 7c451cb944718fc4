package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Bounds for cat fields. AgeInMonth's upper bound is the documented
// product limit, not a biological one.
const (
	MinNameLength        = 1
	MaxNameLength        = 30
	MinDescriptionLength = 1
	MaxDescriptionLength = 200
	MinAgeInMonth        = 1
	MaxAgeInMonth        = 120082
)

// Races is the closed set of known breed names.
var Races = []string{
	"Persian",
	"Maine Coon",
	"Siamese",
	"Ragdoll",
	"Bengal",
	"Sphynx",
	"British Shorthair",
	"Abyssinian",
	"Scottish Fold",
	"Birman",
}

// Cat represents a cat listing owned by a user.
// The store assigns ID and CreatedAt on insert.
type Cat struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Race        string    `json:"race"`
	Sex         string    `json:"sex"`
	AgeInMonth  int32     `json:"ageInMonth"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      int32     `json:"userId"`
}

// ValidRace reports whether race is one of the known breed names.
func ValidRace(race string) bool {
	for _, r := range Races {
		if r == race {
			return true
		}
	}
	return false
}

// ValidSex reports whether sex is exactly "male" or "female".
func ValidSex(sex string) bool {
	return sex == "male" || sex == "female"
}

// ValidImageURL reports whether raw parses as an absolute URL.
func ValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Validate checks the Cat's fields against the listing invariants.
// ID, CreatedAt and UserID are store-assigned and not checked here.
func (c *Cat) Validate() error {
	if l := len(c.Name); l < MinNameLength || l > MaxNameLength {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrValidation, MinNameLength, MaxNameLength)
	}
	if !ValidRace(c.Race) {
		return fmt.Errorf("%w: %q", ErrInvalidRace, c.Race)
	}
	if !ValidSex(c.Sex) {
		return fmt.Errorf("%w: %q", ErrInvalidSex, c.Sex)
	}
	if c.AgeInMonth < MinAgeInMonth || c.AgeInMonth > MaxAgeInMonth {
		return fmt.Errorf("%w: ageInMonth must be between %d and %d",
			ErrValidation, MinAgeInMonth, MaxAgeInMonth)
	}
	if l := len(c.Description); l < MinDescriptionLength || l > MaxDescriptionLength {
		return fmt.Errorf("%w: description must be between %d and %d characters",
			ErrValidation, MinDescriptionLength, MaxDescriptionLength)
	}
	for _, raw := range c.ImageURLs {
		if !ValidImageURL(raw) {
			return fmt.Errorf("%w: %q", ErrInvalidImageURL, raw)
		}
	}
	return nil
}

// CatFilter is a sparse set of predicates controlling a cat listing query.
// Nil pointer fields are absent. HasMatched is accepted on the wire but is
// never applied to the query; it is reserved for the matching feature.
// Owned is presence-only: when non-nil the query is restricted to the
// caller's own cats regardless of the boolean's value.
type CatFilter struct {
	ID         *int32
	Search     *string
	Race       *string
	Sex        *string
	AgeInMonth *string
	HasMatched *bool
	Owned      *bool
	Limit      int32
	Offset     int32
}

// DefaultCatFilter returns a filter with the default pagination bounds
// and no predicates.
func DefaultCatFilter() CatFilter {
	return CatFilter{Limit: 5, Offset: 0}
}

// AgeComparison is an age-in-month predicate decoded from its string form.
type AgeComparison struct {
	Operator string // "=", ">" or "<"
	Value    int32
}

// ParseAgeComparison decodes an ageInMonth filter string. A leading '>'
// means strictly-greater, a leading '<' strictly-less, anything else is
// an exact match. Only a recognized comparison rune is stripped before
// parsing; a plain numeric string is parsed whole.
func ParseAgeComparison(raw string) (AgeComparison, error) {
	op := "="
	numeral := raw
	switch {
	case strings.HasPrefix(raw, ">"):
		op = ">"
		numeral = raw[1:]
	case strings.HasPrefix(raw, "<"):
		op = "<"
		numeral = raw[1:]
	}

	n, err := strconv.ParseInt(numeral, 10, 32)
	if err != nil {
		return AgeComparison{}, fmt.Errorf("%w: %q", ErrInvalidAgeFilter, raw)
	}
	return AgeComparison{Operator: op, Value: int32(n)}, nil
}
