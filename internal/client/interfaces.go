// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-wrench/internal/service"
	"github.com/MKhiriev/go-vault-wrench/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Vault is the contract the command layer programs against. Every method
// except the offline ones requires a prior successful Login.
type Vault interface {
	// Login runs the GPGAuth handshake and keeps the resulting session for
	// the lifetime of the process.
	Login(ctx context.Context) error

	// Search lists the server resources matching every term and refreshes
	// the local cache with the result on a best-effort basis. A non-empty
	// fields list restricts matching to the named resource fields.
	Search(ctx context.Context, terms []string, fields []string) ([]models.Resource, error)

	// SearchOffline answers the search from the local cache without any
	// network access. The returned time is when the cache was last
	// refreshed, zero for a never-filled cache.
	SearchOffline(ctx context.Context, terms []string) ([]models.Resource, time.Time, error)

	// Reveal decrypts the secret of the given resource.
	Reveal(ctx context.Context, resource models.Resource) (models.DecryptedResource, error)

	// Add encrypts the secret to the user's own key and creates the
	// resource on the server.
	Add(ctx context.Context, resource models.DecryptedResource) (models.Resource, error)

	// Share grants permissionType on the resource to the named recipients.
	Share(ctx context.Context, resourceID string, recipientNames []string, permissionType models.PermissionType) (service.ShareReport, error)

	// ApplyDefaultShares shares the resource with the configured default
	// owners and readers. Missing defaults are a no-op.
	ApplyDefaultShares(ctx context.Context, resourceID string) ([]service.ShareReport, error)

	// Dump decrypts every visible resource, reporting per-record failures
	// instead of aborting.
	Dump(ctx context.Context, favouriteOnly bool) ([]models.DecryptedResource, []service.DumpFailure, error)

	// CurrentUser returns the authenticated user's profile.
	CurrentUser(ctx context.Context) (models.User, error)
}
