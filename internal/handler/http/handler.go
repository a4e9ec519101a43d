package http

import (
	"time"

	"github.com/automoney/accountd/internal/config"
	"github.com/automoney/accountd/internal/logger"
	"github.com/automoney/accountd/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger

	// tokenTTL is mirrored into the session cookie's MaxAge and reported in
	// the login response body.
	tokenTTL time.Duration

	// cookieSecure marks the session cookie Secure (HTTPS-only).
	cookieSecure bool
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		logger:       logger,
		tokenTTL:     cfg.TokenDuration,
		cookieSecure: cfg.CookieSecure,
	}
}
