// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the offline resource cache: resource metadata
// (names, URIs, usernames, tags) mirrored from the server into a local
// SQLite file so that search keeps working without a network round-trip.
// Secrets are never cached, neither as plaintext nor as ciphertext.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-wrench/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ResourceCacheRepository mirrors resource metadata into the local cache
// table and answers offline searches over it.
type ResourceCacheRepository interface {
	// ReplaceAll atomically swaps the cache contents for the given listing.
	// The previous snapshot is discarded in the same transaction.
	ReplaceAll(ctx context.Context, resources []models.Resource) error

	// Search returns the cached resources matching every term,
	// case-insensitively, across name, username, URI, description and tags.
	// With no terms it returns the whole cache.
	Search(ctx context.Context, terms []string) ([]models.Resource, error)

	// RefreshedAt returns when the cache was last replaced, or the zero
	// time for an empty cache.
	RefreshedAt(ctx context.Context) (time.Time, error)
}
