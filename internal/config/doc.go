// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the sats-ledger server, client and token tool.
//
// Configuration is assembled from the following sources; later sources
// override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The entry points are [GetServerConfig], [GetClientConfig] and
// [GetTokenConfig]. Each returns a validated view holding only the settings
// its binary needs.
package config
