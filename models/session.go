// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ServerKey is the public key the server advertises on the verify endpoint.
// Its fingerprint is compared against the pinned value from the configuration
// on every handshake; a mismatch is a fatal trust failure.
type ServerKey struct {
	// Fingerprint is the advertised full hex fingerprint.
	Fingerprint string `json:"fingerprint"`

	// ArmoredKey is the ASCII-armored public key material, used to encrypt
	// the server identity verification token.
	ArmoredKey string `json:"keydata"`
}

// SessionCredential is the opaque credential issued by the server after a
// completed handshake. It lives for a single run of the process and is never
// written to disk.
type SessionCredential struct {
	// SessionToken is the value of the server session cookie.
	SessionToken string `json:"-"`

	// SessionCookieName is the name of the cookie carrying SessionToken.
	SessionCookieName string `json:"-"`

	// CSRFToken is the anti-CSRF value that must accompany every mutating
	// request.
	CSRFToken string `json:"-"`
}

// IsZero reports whether the credential has not been populated.
func (c SessionCredential) IsZero() bool {
	return c.SessionToken == "" && c.CSRFToken == ""
}
