package service

import (
	"context"

	"github.com/automoney/accountd/models"
)

// AccountService orchestrates registration, login, profile lookup, and the
// session token lifecycle.
type AccountService interface {
	// RegisterUser validates the request, hashes the password, and persists
	// a new account. The email is normalized (trimmed, lower-cased) before
	// storage.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an existing account by email and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Profile returns the account for an authenticated session subject.
	Profile(ctx context.Context, email string) (models.User, error)

	// ListUsers returns all stored accounts for the diagnostic listing.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw session token string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
