// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PermissionType is the access level a recipient holds on a resource.
type PermissionType int

// Permission levels understood by the server.
const (
	PermissionRead   PermissionType = 1
	PermissionUpdate PermissionType = 7
	PermissionOwner  PermissionType = 15
)

// Permission grants a recipient (user or group) an access level on a
// resource.
type Permission struct {
	// ID is the server-side UUID of the permission record. Empty for
	// permissions not yet persisted.
	ID string `json:"id,omitempty"`

	// ResourceID is the resource the permission applies to.
	ResourceID string `json:"resource_id"`

	// Recipient is the user or group holding the permission.
	Recipient Recipient `json:"-"`

	// Type is the granted access level.
	Type PermissionType `json:"type"`
}
