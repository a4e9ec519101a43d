package store

import (
	"context"

	"github.com/automoney/accountd/models"
)

// UserRepository is the persistence contract of the credential store.
// Emails are expected to arrive already normalized (trimmed, lower-cased);
// the repository performs no normalization of its own.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
