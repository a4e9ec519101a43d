package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/automoney/accountd/internal/logger"
	"github.com/automoney/accountd/internal/utils"
	"github.com/automoney/accountd/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the carried token via
// [service.AccountService.ParseToken], and — on success — stores the
// authenticated subject's email in the request context under
// [utils.EmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrMissingSessionCookie]).
//   - The session cookie is present but empty ([ErrEmptySessionCookie]).
//   - The token is expired, malformed, or signed with the wrong key
//     ([service.ErrTokenIsExpiredOrInvalid]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AccountService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated subject in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the raw session token string from the request's
// session cookie.
//
// It returns the following sentinel errors:
//   - [ErrMissingSessionCookie] — if the cookie is absent from the request.
//   - [ErrEmptySessionCookie] — if the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return "", ErrMissingSessionCookie
	}
	if err != nil {
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}

	return cookie.Value, nil
}
