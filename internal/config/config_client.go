package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported by the version command.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote store. Empty disables sync.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ReadRetries is the number of extra attempts for idempotent reads.
	ReadRetries int
	// AccessToken is attached to every remote call as a bearer token.
	AccessToken string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Path is the SQLite database file.
	Path string
	// VolatileQueue disables persistence of pending sync operations.
	VolatileQueue bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background flush runs.
	SyncInterval time.Duration
	// RetryDelay is the base delay of a failed operation's retry.
	RetryDelay time.Duration
	// MaxRetryAttempts is the number of attempts before an operation is dropped.
	MaxRetryAttempts int
	// ProbeInterval defines how often network availability is checked.
	ProbeInterval time.Duration
}

// ClientLog contains client log output settings.
type ClientLog struct {
	// FilePath is the rotating log file. Empty means stdout.
	FilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote store address, token and timeouts.
	Adapter ClientAdapter
	// Storage contains local card store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains log output settings.
	Log ClientLog
}

// RemoteConfigured reports whether a remote store address is set. A client
// without one keeps working against its local store only.
func (c *ClientConfig) RemoteConfigured() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view.
//
// overrides carries values already parsed by the CLI layer and takes
// precedence over the environment, the JSON file and [ClientDefaults].
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults(ClientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ReadRetries:    cfg.Adapter.ReadRetries,
			AccessToken:    cfg.Adapter.AccessToken,
		},
		Storage: ClientStorage{
			Path:          cfg.Storage.Local.Path,
			VolatileQueue: cfg.Storage.Local.VolatileQueue,
		},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			RetryDelay:       cfg.Workers.RetryDelay,
			MaxRetryAttempts: cfg.Workers.MaxRetryAttempts,
			ProbeInterval:    cfg.Workers.ProbeInterval,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
		},
	}

	return clientCfg, clientCfg.validate()
}
