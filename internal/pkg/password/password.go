package password

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotConfigured    = errors.New("no credential configured")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

// Checker verifies a submitted admin password. Implementations are
// interchangeable so the shared-secret scheme can later be swapped for a real
// identity provider without touching callers.
type Checker interface {
	Check(candidate string) error
}

// PlainChecker compares against a plain shared secret in constant time.
type PlainChecker struct {
	secret string
}

func NewPlainChecker(secret string) *PlainChecker {
	return &PlainChecker{secret: secret}
}

func (c *PlainChecker) Check(candidate string) error {
	if c.secret == "" {
		return ErrNotConfigured
	}
	if candidate == "" {
		return ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(c.secret), []byte(candidate)) != 1 {
		return ErrComparisonFailed
	}
	return nil
}

// BcryptChecker compares against a bcrypt hash of the shared secret.
type BcryptChecker struct {
	hash string
}

func NewBcryptChecker(hash string) *BcryptChecker {
	return &BcryptChecker{hash: hash}
}

func (c *BcryptChecker) Check(candidate string) error {
	if c.hash == "" {
		return ErrNotConfigured
	}
	if candidate == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(candidate))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}

const DefaultCost = bcrypt.DefaultCost

// HashPassword is a convenience for generating ADMIN_PASSWORD_HASH values.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}
