package service

import "errors"

var (
	// ErrTrustMismatch means the server presented a key that does not match
	// the pinned fingerprint. Fatal: possible man-in-the-middle, never
	// retried.
	ErrTrustMismatch = errors.New("server key does not match pinned fingerprint")

	// ErrChallengeRejected means the login challenge could not be solved or
	// the server refused the solved token. Recoverable only by re-entering
	// the passphrase, never by silent retry.
	ErrChallengeRejected = errors.New("login challenge rejected")

	// ErrLoginFailed means the final login exchange kept failing after the
	// configured number of retries.
	ErrLoginFailed = errors.New("login failed")

	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForeignCiphertext means a resource secret could not be opened with
	// the held private key: it is addressed to someone else.
	ErrForeignCiphertext = errors.New("secret is not addressed to the held key")

	// ErrMalformedSecret means a resource secret is not a valid armored
	// OpenPGP message at all.
	ErrMalformedSecret = errors.New("secret is not armored ciphertext")

	ErrUnresolvableRecipient = errors.New("recipient cannot be resolved to a public key")

	ErrResourceNotFound = errors.New("no resource matches the given terms")
)
