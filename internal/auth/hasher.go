package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when a caller tries to hash an empty string.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher computes and checks salted bcrypt digests. The cost factor is
// fixed at construction so every component sees the same tuning.
type Hasher struct {
	cost int
}

// NewHasher clamps cost into bcrypt's supported range, falling back to
// the library default when zero.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of plaintext. bcrypt embeds a random
// per-call salt, so two hashes of the same input differ.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. It returns
// false for malformed digests rather than erroring, so the caller cannot
// distinguish structural failures from a plain mismatch.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
