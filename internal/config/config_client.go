// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	// App carries KDF, blob encoding and logging settings.
	App App
	// Adapter is how the client reaches the server.
	Adapter Adapter
	// Local is the blob cache.
	Local Local
	// Workers holds batch decryption and auto-lock settings.
	Workers Workers
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Local:   cfg.Storage.Local,
		Workers: cfg.Workers,
	}

	return clientCfg, clientCfg.validate()
}
