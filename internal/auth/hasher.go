package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopcore/shopcore-be/internal/apperror"
)

// MinBcryptCost is the lowest cost the hasher accepts. Anything below
// this is too cheap to brute-force resist.
const MinBcryptCost = 10

// Hasher wraps bcrypt with a fixed cost factor.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. Costs below MinBcryptCost are rejected.
func NewHasher(cost int) (*Hasher, error) {
	if cost < MinBcryptCost {
		return nil, fmt.Errorf("bcrypt cost %d is below the minimum of %d", cost, MinBcryptCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash produces a salted one-way hash of the plaintext password.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", apperror.Hash(err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// stored hash is an error; a plain mismatch is (false, nil).
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperror.Hash(err)
	}
}
