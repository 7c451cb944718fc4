package auth

import "time"

// NewTestTokenService creates a token service with an injectable time
// function so tests can exercise expiry deterministically. Not for
// production use; NewTokenService applies the configuration checks.
func NewTestTokenService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
	}
}
