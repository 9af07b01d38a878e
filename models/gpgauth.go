// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GPGAuthVersion is the protocol version tag carried in every GPGAuth token
// and announced in the X-GPGAuth-Version header.
const GPGAuthVersion = "gpgauthv1.3.0"

// gpgAuthTokenLength is the fixed length of the random part of a token,
// a canonical UUID string.
const gpgAuthTokenLength = 36

// NewGPGAuthToken builds a fresh GPGAuth token around a random UUID:
//
//	gpgauthv1.3.0|36|<uuid>|gpgauthv1.3.0
//
// The client encrypts such a token with the server public key during server
// identity verification; the server proves key possession by echoing the
// plaintext back.
func NewGPGAuthToken() string {
	return fmt.Sprintf("%s|%d|%s|%s", GPGAuthVersion, gpgAuthTokenLength, uuid.NewString(), GPGAuthVersion)
}

// ValidateGPGAuthToken checks that value has the exact shape of a GPGAuth
// token: four pipe-separated fields, version tags on both ends, a length
// field of 36 and a parseable UUID. The server-issued challenge nonce must
// pass this check after decryption before it is echoed back at stage 2.
func ValidateGPGAuthToken(value string) error {
	parts := strings.Split(value, "|")
	if len(parts) != 4 {
		return fmt.Errorf("gpgauth token must have 4 segments, got %d", len(parts))
	}
	if parts[0] != GPGAuthVersion || parts[3] != GPGAuthVersion {
		return fmt.Errorf("gpgauth token version mismatch: %q / %q", parts[0], parts[3])
	}
	if parts[1] != fmt.Sprint(gpgAuthTokenLength) {
		return fmt.Errorf("gpgauth token length field must be %d, got %q", gpgAuthTokenLength, parts[1])
	}
	if _, err := uuid.Parse(parts[2]); err != nil {
		return fmt.Errorf("gpgauth token payload is not a UUID: %w", err)
	}

	return nil
}
