// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies all
// invariants required before wrench talks to a server.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Server.BaseURL == "" ||
		(!strings.HasPrefix(cfg.Server.BaseURL, "http://") && !strings.HasPrefix(cfg.Server.BaseURL, "https://")) {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.Fingerprint == "" {
		return ErrNoServerFingerprint
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.LoginRetries < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Keys.PrivateKeyPath == "" {
		return ErrInvalidKeyConfigs
	}

	return nil
}
