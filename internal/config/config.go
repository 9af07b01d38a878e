// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for wrench. It is
// populated by merging values from environment variables, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// Server holds the vault server endpoint and trust settings.
	Server Server `envPrefix:"SERVER_"`

	// Keys holds the local OpenPGP key material settings.
	Keys Keys `envPrefix:"KEYS_"`

	// Storage holds the local resource cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sharing holds the default recipients applied when adding resources.
	Sharing Sharing `envPrefix:"SHARING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables.
	// Populated via the WRENCH_CONFIG environment variable or the
	// --config CLI flag.
	JSONFilePath string `env:"WRENCH_CONFIG"`
}

// Server holds the vault server endpoint and trust pinning settings.
type Server struct {
	// BaseURL is the root URL of the vault server,
	// e.g. "https://vault.example.com". Mandatory.
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Fingerprint is the pinned full hex fingerprint of the server's
	// OpenPGP key. Every handshake compares the advertised fingerprint
	// against this value; a mismatch aborts the run. Mandatory.
	// Env: SERVER_FINGERPRINT
	Fingerprint string `env:"FINGERPRINT"`

	// RequestTimeout bounds every HTTP call, including each handshake
	// stage (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LoginRetries is how many times a transport failure during the
	// challenge stages is retried before the handshake is declared
	// failed. Trust failures and rejected challenges are never retried.
	// Env: SERVER_LOGIN_RETRIES
	LoginRetries int `env:"LOGIN_RETRIES"`
}

// Keys holds the local OpenPGP key settings.
type Keys struct {
	// PrivateKeyPath is the path to the armored private key file imported
	// with "wrench import-key". Mandatory.
	// Env: KEYS_PRIVATE_KEY_PATH
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`

	// Fingerprint optionally pins the expected fingerprint of the user
	// key; when set, loading a key with a different fingerprint fails.
	// Env: KEYS_FINGERPRINT
	Fingerprint string `env:"FINGERPRINT"`

	// Passphrase unlocks the private key. Environment-only by design: it
	// is never read from or written to the JSON file. When empty, the
	// CLI prompts for it interactively.
	// Env: KEYS_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Storage holds the configuration of the local resource cache.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache database.
type DB struct {
	// DSN is the SQLite file path of the cache database
	// (e.g. "~/.config/wrench/cache.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sharing holds default recipients applied during the "add" sharing dialog.
type Sharing struct {
	// DefaultOwners are recipient names (user e-mail addresses or group
	// names) granted owner permission on every new resource.
	// Env: SHARING_DEFAULT_OWNERS (comma-separated)
	DefaultOwners []string `env:"DEFAULT_OWNERS" envSeparator:","`

	// DefaultReaders are recipient names granted read permission on every
	// new resource.
	// Env: SHARING_DEFAULT_READERS (comma-separated)
	DefaultReaders []string `env:"DEFAULT_READERS" envSeparator:","`
}

// GetClientConfig loads, merges, and validates the wrench configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1 or jsonPathOverride)
//  3. Built-in defaults
//
// jsonPathOverride, when non-empty, takes precedence over the WRENCH_CONFIG
// environment variable. Command-line overrides are applied by the CLI layer
// on top of the returned value.
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig(jsonPathOverride string) (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON(jsonPathOverride).
		withDefaults().
		build()
}
