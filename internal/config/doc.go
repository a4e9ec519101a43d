// Package config loads and merges the account service configuration from
// command-line flags, environment variables, and an optional JSON file.
// Earlier sources take priority; the merged result is validated before use.
package config
