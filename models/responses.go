package models

// RegisterResponse is returned by POST /register on success.
type RegisterResponse struct {
	Success string `json:"success"`
}

// LoginResponse is returned by POST /login on success, alongside the
// session cookie. ExpiresInSec mirrors the session TTL so clients can
// schedule re-authentication without parsing the cookie.
type LoginResponse struct {
	Success      string `json:"success"`
	ExpiresInSec int64  `json:"expires_in_sec"`
}

// AuthResponse is returned by GET /auth. User is present only when the
// session subject resolves to a stored account.
type AuthResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// LogoutResponse is returned by GET /logout after the session cookie is
// cleared.
type LogoutResponse struct {
	Msg string `json:"msg"`
}

// ProtectedResponse is the fixed payload of GET /protected.
type ProtectedResponse struct {
	Foo string `json:"foo"`
}

// ErrorResponse is the uniform error body for all failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
