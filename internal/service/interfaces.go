// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side core of wrench: the GPGAuth
// handshake state machine, the session context it produces, the resource
// secret codec, and the share engine that re-encrypts a secret for every
// recipient.
package service

import (
	"context"

	"github.com/MKhiriev/go-vault-wrench/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService drives the GPGAuth handshake against the server and produces
// the session context the rest of the client runs under.
type AuthService interface {
	// Authenticate runs the handshake from the Idle state: server key
	// verification, the login challenge, and the final confirmation. On
	// success it returns an immutable [*SessionContext] and installs the
	// credential on the server adapter.
	//
	// Returns [ErrTrustMismatch] (fatal), [ErrChallengeRejected]
	// (re-prompt the passphrase, never auto-retry), or [ErrLoginFailed]
	// (after bounded retries of the final exchange).
	Authenticate(ctx context.Context) (*SessionContext, error)

	// State returns the current handshake state, for diagnostics.
	State() HandshakeState
}

// ResourceService searches, decrypts, and creates credential records.
// Every method requires an authenticated session.
type ResourceService interface {
	// Search lists the resources whose name, username, URI, description or
	// tags contain every given term, case-insensitively. A non-empty
	// fields list restricts matching to the named fields ("name",
	// "username", "uri", "description"). With no terms it returns all
	// visible resources. Secrets are not fetched or decrypted.
	Search(ctx context.Context, session *SessionContext, terms []string, fields []string) ([]models.Resource, error)

	// Decrypt fetches the resource's encrypted secret if it is not already
	// attached and opens it with the held private key.
	//
	// Returns [ErrMalformedSecret] if the blob is not armored ciphertext
	// and [ErrForeignCiphertext] if it is addressed to a different key.
	Decrypt(ctx context.Context, session *SessionContext, resource models.Resource) (models.DecryptedResource, error)

	// Add encrypts the plaintext secret to the user's own key and creates
	// the resource on the server.
	Add(ctx context.Context, session *SessionContext, resource models.DecryptedResource) (models.Resource, error)

	// Dump decrypts every visible resource. Records that fail to decrypt
	// are reported in the returned failures and skipped; one bad record
	// never aborts the rest.
	Dump(ctx context.Context, session *SessionContext, favouriteOnly bool) ([]models.DecryptedResource, []DumpFailure, error)
}

// DumpFailure identifies a single resource that could not be decrypted
// during a bulk dump.
type DumpFailure struct {
	ResourceID   string
	ResourceName string
	Err          error
}

// DirectoryService resolves recipient names to users and groups and unfolds
// groups into their members.
type DirectoryService interface {
	// Resolve maps each name to a known recipient: an exact username match
	// wins, then an exact group name match. Returns
	// [ErrUnresolvableRecipient] for any name that matches neither.
	Resolve(ctx context.Context, session *SessionContext, names []string) ([]models.Recipient, error)

	// Unfold flattens group recipients into their member users and
	// deduplicates by user id, so a user named directly and through a
	// group appears once. Returns [ErrUnresolvableRecipient] if any
	// resulting user has no public key.
	Unfold(ctx context.Context, session *SessionContext, recipients []models.Recipient) ([]models.User, error)

	// CurrentUser returns the authenticated user's profile.
	CurrentUser(ctx context.Context, session *SessionContext) (models.User, error)
}

// ShareService re-encrypts a resource secret for a set of recipients and
// submits the grant as one atomic server call.
type ShareService interface {
	// Share grants permissionType on the resource to every named recipient.
	// Groups are unfolded, duplicates collapse, and recipients that already
	// hold a permission on the resource are skipped. Either every new
	// recipient receives a decryptable copy of the secret or nothing is
	// persisted.
	Share(ctx context.Context, session *SessionContext, resourceID string, recipientNames []string, permissionType models.PermissionType) (ShareReport, error)

	// EncryptForRecipients produces one independent ciphertext per user,
	// keyed by user id. It is the pure core of Share: no network access, no
	// persistence. Returns [ErrUnresolvableRecipient] before encrypting
	// anything if a user lacks a public key.
	EncryptForRecipients(plaintext string, users []models.User) (map[string]models.SecretCiphertext, error)
}

// ShareReport describes what a Share call actually did.
type ShareReport struct {
	// Granted lists the users that received a new permission and secret.
	Granted []models.User

	// Skipped lists the recipient names that already held a permission.
	Skipped []string
}
