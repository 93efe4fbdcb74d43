package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported in logs and by the agent.
	Version string
	// BaseURL is the public address tree QR artifacts point to.
	BaseURL string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite file of the device cache.
	DSN string
}

// ClientAgent contains the loopback API settings.
type ClientAgent struct {
	HTTPAddress string
	LogFile     string
	Headless    bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often the connectivity prober runs.
	ProbeInterval time.Duration
	// ProbeTimeout bounds a single probe.
	ProbeTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Agent   ClientAgent
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			BaseURL: cfg.App.BaseURL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.Local.DSN,
		},
		Agent: ClientAgent{
			HTTPAddress: cfg.Agent.HTTPAddress,
			LogFile:     cfg.Agent.LogFile,
			Headless:    cfg.Agent.Headless,
		},
		Workers: ClientWorkers{
			ProbeInterval: cfg.Workers.ProbeInterval,
			ProbeTimeout:  cfg.Workers.ProbeTimeout,
		},
	}

	if clientCfg.Workers.ProbeTimeout == 0 {
		clientCfg.Workers.ProbeTimeout = clientCfg.Adapter.RequestTimeout
	}

	return clientCfg
}
