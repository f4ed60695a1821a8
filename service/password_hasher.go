package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptHash marks a stored password digest that bcrypt cannot parse.
// Callers treat the account as unauthenticatable and log the real cause.
var ErrCorruptHash = errors.New("stored password hash is unreadable")

// PasswordHasher hashes and verifies plaintext passwords with bcrypt.
// Each Hash call salts independently, so equal inputs produce different
// digests.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches digest. A mismatch is (false, nil);
// a digest bcrypt cannot read is (false, ErrCorruptHash).
func (h *PasswordHasher) Verify(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCorruptHash
}
