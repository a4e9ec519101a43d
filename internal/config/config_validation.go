// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied by validate for optional settings.
const (
	defaultHTTPAddress   = ":8080"
	defaultTokenIssuer   = "accountd"
	defaultTokenDuration = time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in
// defaults for optional settings.
//
// The token sign key and the store DSN have no defaults: the sign key is
// deliberately explicit configuration (so sessions survive restarts and no
// key ever lives only in process memory), and the service is useless
// without a credential store.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	return nil
}
