package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field (username,
	// password, or email) is missing from a request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when a session token cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised failure for every session
	// token problem: bad signature, wrong issuer, malformed token, or expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
