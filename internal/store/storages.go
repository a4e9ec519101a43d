package store

import (
	"context"

	"github.com/automoney/accountd/internal/config"
	"github.com/automoney/accountd/internal/logger"
	"github.com/automoney/accountd/migrations"
)

// Storages bundles all repositories backed by the credential store.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the configured backend, applies the embedded
// schema migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB, db.Dialect()); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
