// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a Passbolt-compatible vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) speaking the JSON API plus the
// GPGAuth form endpoints under /auth.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// X-GPGAuth-* headers by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401,
// [ErrGPGAuthRejected] for a refused challenge stage).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-wrench/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, session cookie
// and CSRF header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// FetchServerKey retrieves the server's OpenPGP public key and its
	// claimed fingerprint from the unauthenticated verify endpoint. The
	// caller is responsible for comparing the claimed fingerprint against
	// the pinned one before trusting the key material.
	FetchServerKey(ctx context.Context) (models.ServerKey, error)

	// VerifyServerIdentity posts a token encrypted with the server's public
	// key and returns the plaintext token the server echoed back in the
	// X-GPGAuth-Verify-Response header. A server that does not hold the
	// private key matching its published public key cannot produce the echo.
	VerifyServerIdentity(ctx context.Context, userFingerprint, encryptedToken string) (string, error)

	// RequestChallenge performs GPGAuth stage 1: it announces the user's key
	// fingerprint to the login endpoint and returns the armored OpenPGP
	// message carried in the X-GPGAuth-User-Auth-Token header (URL-unquoted).
	// Only the holder of the matching private key can open it.
	RequestChallenge(ctx context.Context, userFingerprint string) (string, error)

	// CompleteChallenge performs GPGAuth stage 2: it posts the decrypted
	// challenge token back to the login endpoint and, on success, returns the
	// session credential assembled from the response cookies.
	CompleteChallenge(ctx context.Context, userFingerprint, decryptedToken string) (models.SessionCredential, error)

	// SetSession stores the credential that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful CompleteChallenge.
	SetSession(credential models.SessionCredential)

	// GetResources lists the resources visible to the authenticated user,
	// with encrypted secrets omitted. When favouriteOnly is true only
	// favourite resources are returned.
	GetResources(ctx context.Context, favouriteOnly bool) ([]models.Resource, error)

	// GetResourceSecret fetches the encrypted secret of a single resource,
	// as stored for the authenticated user.
	GetResourceSecret(ctx context.Context, resourceID string) (models.Secret, error)

	// AddResource creates a new resource together with its encrypted secret
	// and returns the server-assigned record.
	AddResource(ctx context.Context, resource models.Resource) (models.Resource, error)

	// GetUsers lists active users together with their public GPG keys.
	GetUsers(ctx context.Context) ([]models.User, error)

	// GetGroups lists groups together with their member user ids.
	GetGroups(ctx context.Context) ([]models.Group, error)

	// GetCurrentUser returns the profile of the authenticated user.
	GetCurrentUser(ctx context.Context) (models.User, error)

	// GetResourcePermissions lists the permissions currently granted on a
	// resource. The share flow uses this to skip recipients that already
	// hold access.
	GetResourcePermissions(ctx context.Context, resourceID string) ([]models.Permission, error)

	// ShareResource submits new permissions and per-recipient encrypted
	// secrets for a resource in a single atomic request. The server applies
	// all of it or none of it.
	ShareResource(ctx context.Context, resourceID string, req models.ShareRequest) error
}
