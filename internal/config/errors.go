package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings (missing or
	// non-HTTP base URL, non-positive request timeout, negative retries).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrNoServerFingerprint indicates the pinned server key fingerprint is
	// missing. Without it the handshake has nothing to verify trust
	// against, so wrench refuses to start.
	ErrNoServerFingerprint = errors.New("no pinned server fingerprint configured")
	// ErrInvalidKeyConfigs indicates invalid key settings (for example,
	// missing private key path).
	ErrInvalidKeyConfigs = errors.New("invalid key configuration")
)
