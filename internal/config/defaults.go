// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultServerAddress     = "localhost:8080"
	defaultRequestTimeout    = 10 * time.Second
	defaultRateLimit         = 300
	defaultTokenIssuer       = "go-vocab-keeper"
	defaultTokenDuration     = 24 * time.Hour
	defaultLocalPath         = "vocab-keeper.db"
	defaultLogFilePath       = "vocab-keeper.log"
	defaultReadRetries       = 2
	defaultSyncInterval      = 30 * time.Second
	defaultRetryDelay        = 5 * time.Second
	defaultMaxRetryAttempts  = 3
	defaultNetworkProbeEvery = 15 * time.Second
)

// ServerDefaults returns the lowest-priority values for the remote store
// server.
func ServerDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimit:      defaultRateLimit,
		},
	}
}

// ClientDefaults returns the lowest-priority values for the client. The
// remote address is left empty so that an unconfigured client runs
// local-only.
func ClientDefaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Local: Local{Path: defaultLocalPath},
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
			ReadRetries:    defaultReadRetries,
		},
		Workers: Workers{
			SyncInterval:     defaultSyncInterval,
			RetryDelay:       defaultRetryDelay,
			MaxRetryAttempts: defaultMaxRetryAttempts,
			ProbeInterval:    defaultNetworkProbeEvery,
		},
		Log: Log{FilePath: defaultLogFilePath},
	}
}
