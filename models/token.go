package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors.
//
// It embeds [jwt.Token] for low-level operations (signing, parsing) and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact serialized form ready to be placed into the session cookie.
// Email is a cached copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Email is the session subject extracted from the "sub" claim.
	Email string `json:"-"`
}

// GetEmail extracts the session subject from the token's "sub" claim.
// Returns an error if the claim is missing or empty.
func (t *Token) GetEmail() (string, error) {
	email, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting email from token: %w", err)
	}

	return email, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
