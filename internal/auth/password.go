package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the shortest host password HashPassword accepts.
const MinPasswordLength = 8

// PasswordAuthenticator checks a single host password against a bcrypt hash.
type PasswordAuthenticator struct {
	hash []byte
}

// NewPasswordAuthenticator creates an authenticator for the given bcrypt hash.
// It fails if hash is not a bcrypt hash.
func NewPasswordAuthenticator(hash string) (*PasswordAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return &PasswordAuthenticator{hash: []byte(hash)}, nil
}

// Authenticate compares the password with the stored hash.
func (a *PasswordAuthenticator) Authenticate(_ context.Context, credential string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns the bcrypt hash of password for use in configuration.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
