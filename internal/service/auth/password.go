package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordHasher defines the interface for hashing and comparing passwords.
type PasswordHasher interface {
	// Hash produces a self-contained, randomly-salted one-way digest of
	// the plaintext password.
	Hash(password string) (string, error)

	// Compare compares a stored hash with its possible plaintext
	// equivalent. Returns nil on success, ErrPasswordMismatch on a
	// mismatch, or ErrMalformedHash when the stored hash cannot be
	// decoded.
	Compare(encodedHash, password string) error
}

// Argon2 parameters. Hashes embed their own parameters, so these only
// affect newly created hashes.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// Argon2Hasher implements PasswordHasher using argon2id with the
// standard PHC string encoding ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
type Argon2Hasher struct{}

// NewArgon2Hasher creates a new Argon2Hasher.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{}
}

var _ PasswordHasher = (*Argon2Hasher)(nil)

// Hash implements PasswordHasher.Hash. The salt is drawn from a
// cryptographically secure source per call.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Compare implements PasswordHasher.Compare. The hash is recomputed with
// the parameters embedded in the stored string and compared in constant
// time.
func (h *Argon2Hasher) Compare(encodedHash, password string) error {
	salt, key, time, memory, threads, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// decodeArgon2Hash splits a PHC-encoded argon2id string into its salt,
// derived key and parameters.
func decodeArgon2Hash(encodedHash string) (salt, key []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, key, time, memory, threads, nil
}
