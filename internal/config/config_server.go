package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view of the remote store process.
type ServerConfig struct {
	Version        string
	DSN            string
	HTTPAddress    string
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version:        cfg.App.Version,
		DSN:            cfg.Storage.DB.DSN,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
}
