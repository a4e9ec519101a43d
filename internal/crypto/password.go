// SPDX-License-Identifier: Apache-2.0

// Package crypto provides password hashing primitives for the account
// service.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// PasswordHasher provides one-way password hashing and verification.
// The salt is embedded in the produced blob, so stored hashes can be
// re-verified later without knowing the original cost parameters.
type PasswordHasher interface {
	// Hash produces a salted hash of the password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	// A well-formed mismatch returns false, never an error or panic.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt, a slow adaptive
// function that defends stored hashes against offline brute force.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the library default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches the bcrypt hash.
// bcrypt performs the comparison in constant time.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
