// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// SecretCiphertext is an armored OpenPGP message bound to exactly one
// recipient's public key. Armored output is randomized, so two ciphertexts of
// the same plaintext are never byte-equal; callers may rely only on
// round-trip correctness, never on byte stability.
type SecretCiphertext string

// armorHeader is the first line of every ASCII-armored OpenPGP message.
const armorHeader = "-----BEGIN PGP MESSAGE-----"

// IsArmored reports whether the value looks like an armored OpenPGP message.
// It is a cheap shape check, not a guarantee the message parses.
func (s SecretCiphertext) IsArmored() bool {
	return strings.HasPrefix(strings.TrimSpace(string(s)), armorHeader)
}

// Secret is one encrypted copy of a resource secret, addressed to a single
// user. A resource shared with N users carries N independent Secret values.
type Secret struct {
	// ResourceID is the resource the secret belongs to.
	ResourceID string `json:"resource_id,omitempty"`

	// UserID is the addressed recipient. Empty when the secret is being
	// created together with the resource (it is then implicitly addressed
	// to the current user).
	UserID string `json:"user_id,omitempty"`

	// Data is the armored ciphertext.
	Data SecretCiphertext `json:"data"`
}
