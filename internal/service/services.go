package service

import (
	"github.com/automoney/accountd/internal/config"
	"github.com/automoney/accountd/internal/crypto"
	"github.com/automoney/accountd/internal/logger"
	"github.com/automoney/accountd/internal/store"
)

type Services struct {
	AccountService AccountService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(storages.UserRepository, crypto.NewBcryptHasher(), cfg, logger),
	}
}
