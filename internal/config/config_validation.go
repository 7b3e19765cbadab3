package config

import "github.com/bishtbros/ledger/internal/hash"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.App.HashScheme {
	case "", hash.SchemeSaltedSHA256, hash.SchemeArgon2id:
	default:
		return ErrInvalidAppConfigs
	}

	return nil
}
