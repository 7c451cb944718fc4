// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidRace is returned when a cat's race is not one of the known breeds.
	ErrInvalidRace = errors.New("invalid race")

	// ErrInvalidSex is returned when a cat's sex is not "male" or "female".
	ErrInvalidSex = errors.New("invalid sex")

	// ErrInvalidImageURL is returned when an image URL does not parse as a URL.
	ErrInvalidImageURL = errors.New("invalid image URL")

	// ErrInvalidAgeFilter is returned when an age-in-month filter value
	// cannot be parsed as an integer after its comparison prefix is removed.
	ErrInvalidAgeFilter = errors.New("invalid ageInMonth filter")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
