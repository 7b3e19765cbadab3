package config

import (
	"time"
)

// Default values applied by [GetConfig] when no source supplies a field.
const (
	// DefaultAddress is the fallback HTTP listen address.
	DefaultAddress = ":5000"

	// DefaultSessionTTL is the fixed session lifetime.
	DefaultSessionTTL = 8 * time.Hour

	// DefaultHashSalt is the fixed salt mixed into every credential digest
	// under the salted-SHA256 scheme. Kept as-is so that credentials hashed
	// by earlier deployments keep matching.
	DefaultHashSalt = "bisht_salt_2026"

	// DefaultTokenSecret is the server secret mixed into session token
	// derivation.
	DefaultTokenSecret = "bb_secret"
)

// Config is the top-level configuration container for the ledger
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings: hashing scheme and secrets,
	// session lifecycle, and the legacy flat-file locations.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control credential
// hashing, session lifecycle, and the one-time legacy data migration.
type App struct {
	// HashScheme selects the credential hasher: "sha256" (default,
	// compatible with legacy digests) or "argon2id".
	// Env: APP_HASH_SCHEME
	HashScheme string `env:"HASH_SCHEME"`

	// HashSalt is the fixed salt used by the salted-SHA256 scheme.
	// Env: APP_HASH_SALT
	HashSalt string `env:"HASH_SALT"`

	// TokenSecret is the server secret mixed into session token derivation.
	// Must be kept confidential.
	// Env: APP_TOKEN_SECRET
	TokenSecret string `env:"TOKEN_SECRET"`

	// SessionTTL is how long a session remains valid after login
	// (e.g. "8h"). Sessions do not slide.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SweepInterval is how often the background sweeper scans the session
	// store for expired entries (e.g. "10m").
	// Env: APP_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// LegacyUsersFile is the path to the pre-database users JSON file.
	// When the file exists at startup its entries are merged into the user
	// directory; when it does not, the migration is skipped silently.
	// Env: APP_LEGACY_USERS_FILE
	LegacyUsersFile string `env:"LEGACY_USERS_FILE"`

	// LegacyRecordsFile is the path to the pre-database due records JSON
	// file, merged the same way as LegacyUsersFile.
	// Env: APP_LEGACY_RECORDS_FILE
	LegacyRecordsFile string `env:"LEGACY_RECORDS_FILE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://..." DSN selects
	// the PostgreSQL connector; anything else is treated as a SQLite file
	// path for local runs.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Falls back to DefaultAddress.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Built-in fallbacks are applied after the merge, so a zero-configuration
// start is valid for everything except the database DSN.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills in the built-in fallbacks for every field no source
// supplied.
func (cfg *Config) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultAddress
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.HashSalt == "" {
		cfg.App.HashSalt = DefaultHashSalt
	}
	if cfg.App.TokenSecret == "" {
		cfg.App.TokenSecret = DefaultTokenSecret
	}
}
