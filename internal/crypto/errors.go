package crypto

import "errors"

var (
	// ErrNoPrivateKey indicates the supplied key material does not contain
	// a private key.
	ErrNoPrivateKey = errors.New("key material holds no private key")
	// ErrWrongPassphrase indicates the private key could not be unlocked
	// with the supplied passphrase.
	ErrWrongPassphrase = errors.New("wrong key passphrase")
	// ErrFingerprintMismatch indicates the loaded key does not match the
	// fingerprint pinned in the configuration.
	ErrFingerprintMismatch = errors.New("key fingerprint mismatch")

	// ErrMalformedCiphertext indicates a value that is not an armored
	// OpenPGP message.
	ErrMalformedCiphertext = errors.New("malformed armored ciphertext")
	// ErrDecryptionFailed indicates an armored message that cannot be
	// opened with the held private key.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrEncryptionFailed indicates a recipient key that cannot be parsed
	// or used for encryption.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrNoServerKey indicates EncryptForServer was called before a server
	// key was imported.
	ErrNoServerKey = errors.New("no server key imported")
)
