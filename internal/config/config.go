// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-vocab-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from a JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the remote database and the local card store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and limits of the remote store server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background sync settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings of the client.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to verify (and, for development,
	// issue) bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of development tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB is the PostgreSQL database of the remote store server.
	DB DB `envPrefix:"DB_"`

	// Local is the on-device SQLite card store of the client.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings of the client-side SQLite database.
type Local struct {
	// Path is the SQLite database file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`

	// VolatileQueue keeps pending sync operations in memory only. By default
	// they are stored in the local database and survive restarts.
	// Env: STORAGE_LOCAL_VOLATILE_QUEUE
	VolatileQueue bool `env:"VOLATILE_QUEUE"`
}

// Server holds network and limit settings of the remote store server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`
}

// Adapter holds the client's connection settings to the remote store.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store. Empty means the client
	// runs in local-only mode.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadRetries is the number of extra attempts for idempotent reads.
	// Env: ADAPTER_READ_RETRIES
	ReadRetries int `env:"READ_RETRIES"`

	// AccessToken is the bearer token handed over by the authentication
	// transport.
	// Env: ADAPTER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Workers holds background sync settings.
type Workers struct {
	// SyncInterval is the period of the recurring flush.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RetryDelay is the base delay of a failed operation's retry; the n-th
	// retry waits n × RetryDelay.
	// Env: WORKERS_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// MaxRetryAttempts is the number of delivery attempts after which an
	// operation is dropped.
	// Env: WORKERS_MAX_RETRY_ATTEMPTS
	MaxRetryAttempts int `env:"MAX_RETRY_ATTEMPTS"`

	// ProbeInterval is the period of the network availability probe.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is the client log file. Empty means stdout.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. Sources are merged in the following priority
// order; a field keeps the first non-zero value it receives:
//  1. Command-line flags (args)
//  2. Environment variables
//  3. JSON file (path resolved from flags or env)
//  4. [ServerDefaults]
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults(ServerDefaults()).
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
