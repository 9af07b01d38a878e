// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the OpenPGP key store of wrench on top of
// ProtonMail's gopenpgp. All primitive cryptographic operations —
// decrypting server challenges and resource secrets, encrypting secrets for
// the current user, the server, or share recipients, and fingerprint
// comparison — live here.
package crypto

import (
	"fmt"
	"strings"

	"github.com/ProtonMail/gopenpgp/v3/crypto"

	"github.com/MKhiriev/go-vault-wrench/models"
)

// pgpKeyStore is the private implementation of [KeyStore].
type pgpKeyStore struct {
	pgp *crypto.PGPHandle

	// userKey is the unlocked private key. It never leaves this struct.
	userKey *crypto.Key

	// serverKey is the server's public key, imported during the handshake
	// verify stage.
	serverKey *crypto.Key
}

// NewKeyStore parses and unlocks the armored private key and returns a
// [KeyStore] holding it. expectedFingerprint, when non-empty, pins the
// user key: a parsed key with a different fingerprint is rejected with
// [ErrFingerprintMismatch].
//
// Returns [ErrNoPrivateKey] if the material holds no private key and
// [ErrWrongPassphrase] if the passphrase does not unlock it.
func NewKeyStore(armoredPrivateKey string, passphrase []byte, expectedFingerprint string) (KeyStore, error) {
	key, err := crypto.NewKeyFromArmored(armoredPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	if !key.IsPrivate() {
		return nil, ErrNoPrivateKey
	}

	locked, err := key.IsLocked()
	if err != nil {
		return nil, fmt.Errorf("inspect private key: %w", err)
	}
	if locked {
		key, err = key.Unlock(passphrase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
		}
	}

	ks := &pgpKeyStore{pgp: crypto.PGP(), userKey: key}

	if expectedFingerprint != "" && !ks.VerifyFingerprint(key.GetFingerprint(), expectedFingerprint) {
		return nil, fmt.Errorf("%w: key is %s, expected %s",
			ErrFingerprintMismatch, key.GetFingerprint(), expectedFingerprint)
	}

	return ks, nil
}

// Fingerprint implements [KeyStore].
func (k *pgpKeyStore) Fingerprint() string {
	return strings.ToUpper(k.userKey.GetFingerprint())
}

// ArmoredPublicKey implements [KeyStore].
func (k *pgpKeyStore) ArmoredPublicKey() (string, error) {
	armored, err := k.userKey.GetArmoredPublicKey()
	if err != nil {
		return "", fmt.Errorf("armor public key: %w", err)
	}
	return armored, nil
}

// Decrypt implements [KeyStore]. A failed open is reported as
// [ErrDecryptionFailed] without distinguishing wrong-recipient from
// corrupted data: OpenPGP deliberately does not reveal which it was.
func (k *pgpKeyStore) Decrypt(ciphertext models.SecretCiphertext) (string, error) {
	if !ciphertext.IsArmored() {
		return "", ErrMalformedCiphertext
	}

	decHandle, err := k.pgp.Decryption().DecryptionKey(k.userKey).New()
	if err != nil {
		return "", fmt.Errorf("build decryption handle: %w", err)
	}

	decrypted, err := decHandle.Decrypt([]byte(ciphertext), crypto.Armor)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return string(decrypted.Bytes()), nil
}

// Encrypt implements [KeyStore].
func (k *pgpKeyStore) Encrypt(plaintext string, recipientArmoredKey string) (models.SecretCiphertext, error) {
	recipient, err := crypto.NewKeyFromArmored(recipientArmoredKey)
	if err != nil {
		return "", fmt.Errorf("%w: parse recipient key: %v", ErrEncryptionFailed, err)
	}

	return k.encryptTo(plaintext, recipient)
}

// EncryptToSelf implements [KeyStore].
func (k *pgpKeyStore) EncryptToSelf(plaintext string) (models.SecretCiphertext, error) {
	return k.encryptTo(plaintext, k.userKey)
}

// ImportServerKey implements [KeyStore].
func (k *pgpKeyStore) ImportServerKey(armoredKey string) error {
	serverKey, err := crypto.NewKeyFromArmored(armoredKey)
	if err != nil {
		return fmt.Errorf("parse server key: %w", err)
	}

	k.serverKey = serverKey
	return nil
}

// ServerFingerprint implements [KeyStore].
func (k *pgpKeyStore) ServerFingerprint() string {
	if k.serverKey == nil {
		return ""
	}
	return strings.ToUpper(k.serverKey.GetFingerprint())
}

// EncryptForServer implements [KeyStore].
func (k *pgpKeyStore) EncryptForServer(plaintext string) (string, error) {
	if k.serverKey == nil {
		return "", ErrNoServerKey
	}

	ciphertext, err := k.encryptTo(plaintext, k.serverKey)
	return string(ciphertext), err
}

// VerifyFingerprint implements [KeyStore].
func (k *pgpKeyStore) VerifyFingerprint(observed, pinned string) bool {
	return normalizeFingerprint(observed) != "" &&
		normalizeFingerprint(observed) == normalizeFingerprint(pinned)
}

func (k *pgpKeyStore) encryptTo(plaintext string, recipient *crypto.Key) (models.SecretCiphertext, error) {
	encHandle, err := k.pgp.Encryption().Recipient(recipient).New()
	if err != nil {
		return "", fmt.Errorf("build encryption handle: %w", err)
	}

	message, err := encHandle.Encrypt([]byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	armored, err := message.ArmorBytes()
	if err != nil {
		return "", fmt.Errorf("armor message: %w", err)
	}

	return models.SecretCiphertext(armored), nil
}

func normalizeFingerprint(fp string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(fp), " ", ""))
}
