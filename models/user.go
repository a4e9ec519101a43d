package models

import "time"

// User represents an account record used for registration and login.
// PasswordHash is the bcrypt blob produced at registration time; it is
// excluded from JSON so no handler can serialize it to a caller.
type User struct {
	// UserID is the store-assigned unique identifier. Immutable.
	UserID int64 `json:"user_id"`

	// Username is the display name. Free text, no uniqueness guarantee.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never the plaintext, never exposed via JSON.
	PasswordHash string `json:"-"`

	// Email is the unique lookup key for login and session identity.
	// Stored trimmed and lower-cased.
	Email string `json:"email"`

	// CreatedAt is the timestamp the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
