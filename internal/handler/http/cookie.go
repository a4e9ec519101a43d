package http

import (
	"net/http"

	"github.com/automoney/accountd/models"
)

// sessionCookieName is the name of the HTTP-only cookie that carries the
// signed session token between the browser and the API.
const sessionCookieName = "access_token_cookie"

// setSessionCookie attaches the signed session token to the response as an
// HTTP-only cookie. The cookie lives as long as the token itself, so the
// browser drops it around the time the token expires.
//
// SameSite is Lax so the cookie survives top-level navigations from the
// frontend while still blocking cross-site POSTs.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the session cookie with an expired empty one,
// instructing the browser to delete it.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
