package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedHash indicates a stored password hash could not be decoded
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrPasswordMismatch indicates the password does not match the stored hash
	ErrPasswordMismatch = errors.New("password does not match")
)
