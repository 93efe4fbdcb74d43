// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Version: "1.0.0", BaseURL: "https://trees.example"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/trees"}, Local: Local{DSN: "cache.db"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 10 * time.Second},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second},
		Agent:   Agent{HTTPAddress: "127.0.0.1:3000"},
		Workers: Workers{ProbeInterval: 5 * time.Second},
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg := newServerConfig(validStructuredConfig())

	require.NoError(t, cfg.validate())
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "postgres://localhost/trees", cfg.DSN)
	assert.Equal(t, "localhost:8080", cfg.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validStructuredConfig()
			tt.mutate(sc)
			assert.ErrorIs(t, newServerConfig(sc).validate(), tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := newClientConfig(validStructuredConfig())

	require.NoError(t, cfg.validate())
	assert.Equal(t, "cache.db", cfg.Storage.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "127.0.0.1:3000", cfg.Agent.HTTPAddress)
	assert.Equal(t, "https://trees.example", cfg.App.BaseURL)
	// probe timeout falls back to the adapter timeout
	assert.Equal(t, 5*time.Second, cfg.Workers.ProbeTimeout)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "missing local dsn", mutate: func(c *StructuredConfig) { c.Storage.Local.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "in-memory local dsn", mutate: func(c *StructuredConfig) { c.Storage.Local.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing remote address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing request timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing agent address", mutate: func(c *StructuredConfig) { c.Agent.HTTPAddress = "" }, wantErr: ErrInvalidAgentConfigs},
		{name: "missing probe interval", mutate: func(c *StructuredConfig) { c.Workers.ProbeInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "missing base url", mutate: func(c *StructuredConfig) { c.App.BaseURL = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validStructuredConfig()
			tt.mutate(sc)
			assert.ErrorIs(t, newClientConfig(sc).validate(), tt.wantErr)
		})
	}
}
