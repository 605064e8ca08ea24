// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// ServerConfig is the configuration of the blob/salt API server.
type ServerConfig struct {
	// App carries token verification settings and the version string.
	App App
	// DB is the PostgreSQL database.
	DB DB
	// Server is the HTTP listener.
	Server Server
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	return loadServerConfig(os.Args[1:])
}

func loadServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:    cfg.App,
		DB:     cfg.Storage.DB,
		Server: cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
