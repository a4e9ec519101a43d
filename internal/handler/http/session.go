package http

import (
	"errors"
	"net/http"

	"github.com/automoney/accountd/internal/logger"
	"github.com/automoney/accountd/internal/store"
	"github.com/automoney/accountd/internal/utils"
	"github.com/automoney/accountd/models"
)

// live is a plain-text liveness probe.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Api Is Working"))
}

// authStatus reports whether the session cookie maps to an existing account.
//
// The auth middleware has already validated the token, so a failed profile
// lookup here means the account was removed after the session was issued;
// that case answers {"authenticated": false} rather than an error.
func (h *Handler) authStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no session subject found in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AccountService.Profile(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", email).Msg("session subject no longer exists")
			utils.WriteJSON(w, models.AuthResponse{Authenticated: false}, http.StatusOK)
			return
		}

		log.Err(err).Msg("unexpected error occurred during profile lookup")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Authenticated: true, User: &user}, http.StatusOK)
}

// protected is a sample endpoint reachable only with a valid session.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ProtectedResponse{Foo: "bar"}, http.StatusOK)
}

// data returns the full account listing. Password hashes are excluded from
// the JSON encoding of models.User.
func (h *Handler) data(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AccountService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
