package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	codeMin   = 100000
	codeRange = 900000
)

// GenerateCode returns a uniformly random six-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}

// CodeHasher hashes one-time codes with bcrypt.
type CodeHasher struct {
	cost int
}

// NewCodeHasher creates a hasher with the given bcrypt cost.
func NewCodeHasher(cost int) *CodeHasher {
	return &CodeHasher{cost: cost}
}

// Hash returns the bcrypt hash of code.
func (h *CodeHasher) Hash(code string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash code: %w", err)
	}
	return string(b), nil
}

// Compare reports whether code matches hash. A malformed hash is an error;
// a plain mismatch is (false, nil).
func (h *CodeHasher) Compare(hash, code string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare code: %w", err)
	}
}
