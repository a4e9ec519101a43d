// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the account
// service. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the session-token signing key,
	// issuer, TTL, and cookie hardening options.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle and the session cookie.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// It is explicit configuration: the service refuses to start without it,
	// so issued sessions survive process restarts.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token
	// and validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "1h", "30m"). The session cookie carries the same TTL.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieSecure marks the session cookie as Secure (HTTPS-only).
	// Off by default for local use; production deployments must enable it.
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the credential store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the credential store.
type DB struct {
	// DSN is the data source name. A postgres:// or postgresql:// scheme
	// selects the PostgreSQL backend; any other value is treated as a
	// SQLite file path for local use.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading a single
	// inbound request header (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig builds the final configuration by layering
// command-line flags, environment variables, and the optional JSON file
// (earlier sources win), then validating the merged result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
