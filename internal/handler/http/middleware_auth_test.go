// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoney/accountd/internal/service"
	"github.com/automoney/accountd/internal/utils"
	"github.com/automoney/accountd/models"
)

// nextSpy records whether the wrapped handler ran and what subject it saw.
type nextSpy struct {
	called bool
	email  string
	ok     bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.email, s.ok = utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuthMiddleware_ValidCookie verifies that a valid session cookie lets
// the request through with the subject stored in the context.
func TestAuthMiddleware_ValidCookie(t *testing.T) {
	accounts := &mockAccountService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid-token", tokenString)
			return models.Token{Email: "alice@example.com"}, nil
		},
	}

	h := newHandlerWithAccounts(t, accounts)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.True(t, spy.ok)
	assert.Equal(t, "alice@example.com", spy.email)
}

// TestAuthMiddleware_MissingCookie verifies that a request without the
// session cookie is rejected with 401.
func TestAuthMiddleware_MissingCookie(t *testing.T) {
	h := newHandlerWithAccounts(t, &mockAccountService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

// TestAuthMiddleware_EmptyCookie verifies that an empty cookie value is
// rejected with 401.
func TestAuthMiddleware_EmptyCookie(t *testing.T) {
	h := newHandlerWithAccounts(t, &mockAccountService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Cookie", sessionCookieName+"=")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

// TestAuthMiddleware_InvalidToken verifies that an expired or malformed
// token is rejected with 401.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	accounts := &mockAccountService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAccounts(t, accounts)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale-token"})
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, spy.called)
}

// TestGetTokenFromCookie covers the sentinel errors of the cookie extractor.
func TestGetTokenFromCookie(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := getTokenFromCookie(req)
		assert.ErrorIs(t, err, ErrMissingSessionCookie)
	})

	t.Run("empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", sessionCookieName+"=")
		_, err := getTokenFromCookie(req)
		assert.ErrorIs(t, err, ErrEmptySessionCookie)
	})

	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token-value"})
		got, err := getTokenFromCookie(req)
		require.NoError(t, err)
		assert.Equal(t, "token-value", got)
	})
}
