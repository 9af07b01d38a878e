// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-vault-wrench/models"

// KeyStore owns the user's OpenPGP key pair and the server's public key, and
// performs every sign/encrypt/decrypt/verify primitive in wrench. No other
// package may hold or transmit unencrypted private-key material.
//
// A KeyStore is immutable after ImportServerKey has been called during the
// handshake verify stage; all other methods hold no per-call mutable state,
// so concurrent use from bulk decrypt/encrypt workers is safe without
// locking.
type KeyStore interface {
	// Fingerprint returns the full uppercase hex fingerprint of the user's
	// key pair.
	Fingerprint() string

	// ArmoredPublicKey returns the ASCII-armored public part of the user's
	// key pair, as uploaded to the server during account setup.
	ArmoredPublicKey() (string, error)

	// Decrypt recovers the plaintext of an armored message addressed to
	// the user's private key. It fails with [ErrMalformedCiphertext] if
	// the value is not an armored OpenPGP message, and with
	// [ErrDecryptionFailed] if the message cannot be opened with the held
	// key (wrong recipient, corrupted data).
	Decrypt(ciphertext models.SecretCiphertext) (string, error)

	// Encrypt produces an armored message readable only by the holder of
	// recipientArmoredKey. Armored output is randomized: two calls with
	// identical inputs yield different bytes but identical round-trip
	// plaintexts.
	Encrypt(plaintext string, recipientArmoredKey string) (models.SecretCiphertext, error)

	// EncryptToSelf produces an armored message addressed to the user's
	// own public key, used when creating or updating a personal resource.
	EncryptToSelf(plaintext string) (models.SecretCiphertext, error)

	// ImportServerKey parses and stores the server's advertised public
	// key. Called exactly once, during the handshake verify stage, before
	// any concurrent use of the KeyStore.
	ImportServerKey(armoredKey string) error

	// ServerFingerprint returns the fingerprint of the imported server
	// key, or the empty string if no server key has been imported.
	ServerFingerprint() string

	// EncryptForServer produces an armored message addressed to the
	// imported server key. Fails with [ErrNoServerKey] before
	// ImportServerKey has succeeded.
	EncryptForServer(plaintext string) (string, error)

	// VerifyFingerprint reports whether two fingerprints identify the same
	// key. Pure comparison, case- and whitespace-insensitive, no side
	// effects.
	VerifyFingerprint(observed, pinned string) bool
}
