package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrNoTokenSignKey indicates that no session-token signing key was
	// provided via flags, environment, or the JSON config file.
	ErrNoTokenSignKey = errors.New("no token sign key configured")
	// ErrInvalidStorageConfigs indicates invalid credential store settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
