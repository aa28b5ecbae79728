// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultAdapterAddress = "http://localhost:5000"
	defaultAdapterTimeout = 10 * time.Second
)

// ClientConfig is the configuration of the CLI client.
type ClientConfig struct {
	Adapter Adapter `envPrefix:"ADAPTER_"`
}

// Adapter holds the settings used to reach the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request sent to the server.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads the client configuration from the environment on
// top of the built-in defaults. Command-line flags of the client are applied
// by the caller through [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Override replaces the adapter settings with the non-zero values given
// and validates the result.
func (cfg *ClientConfig) Override(address string, timeout time.Duration) error {
	if address != "" {
		cfg.Adapter.HTTPAddress = address
	}
	if timeout != 0 {
		cfg.Adapter.RequestTimeout = timeout
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("error validating client configs: %w", err)
	}

	return nil
}
