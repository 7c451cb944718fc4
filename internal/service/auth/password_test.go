package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash %q missing PHC prefix", hash)

	require.NoError(t, hasher.Compare(hash, "correct horse battery"))
}

func TestArgon2HasherMismatch(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("secret-one")
	require.NoError(t, err)

	err = hasher.Compare(hash, "secret-two")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestArgon2HasherDistinctSalts(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must not collide")
	assert.NoError(t, hasher.Compare(first, "same password"))
	assert.NoError(t, hasher.Compare(second, "same password"))
}

func TestArgon2HasherMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2Hasher()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "not a PHC string", hash: "plaintext"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "missing sections", hash: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "bad base64 salt", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.Compare(tc.hash, "whatever")
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
