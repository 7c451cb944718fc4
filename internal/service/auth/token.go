package auth

import "context"

// Identity is the information a token proves about its bearer: the user
// id and email embedded at issuance time. It is not re-verified against
// current account state on later requests.
type Identity struct {
	UserID int32  `json:"id"`
	Email  string `json:"email"`
}

// TokenService defines operations for managing signed identity tokens.
type TokenService interface {
	// Generate creates a signed token embedding the identity, valid for
	// the configured lifetime from the moment of issuance.
	Generate(ctx context.Context, identity Identity) (string, error)

	// Validate parses and verifies the token string and extracts the
	// embedded identity. Returns ErrExpiredToken once the embedded
	// expiry has passed and ErrInvalidToken for anything that cannot be
	// parsed or verified against the signature.
	Validate(ctx context.Context, tokenString string) (*Identity, error)
}
