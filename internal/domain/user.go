package domain

import "time"

// User represents a registered account.
// The store assigns ID and CreatedAt on insert.
type User struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
}

// UserFilter is a sparse set of predicates for a single-user lookup.
// A zero or negative ID is treated as absent, matching the listing filter.
type UserFilter struct {
	ID    int32
	Email string
	Name  string
}
