// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GpgKey is a public OpenPGP key known to the server.
type GpgKey struct {
	// ID is the server-side UUID of the key record.
	ID string `json:"id"`

	// Fingerprint is the full hex fingerprint of the key.
	Fingerprint string `json:"fingerprint"`

	// ArmoredKey is the ASCII-armored public key material.
	ArmoredKey string `json:"armored_key"`
}

// User is a vault account that can receive shared secrets. Users invited to
// the server but not yet registered have no GPG key and cannot be encrypted
// for.
type User struct {
	// ID is the server-side UUID of the user.
	ID string `json:"id"`

	// Username is the unique login identifier, an e-mail address.
	Username string `json:"username"`

	// FirstName and LastName come from the user profile.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// GroupIDs lists the IDs of the groups the user belongs to.
	GroupIDs []string `json:"group_ids,omitempty"`

	// GpgKey is the user's public key, nil if the user has not completed
	// account setup yet.
	GpgKey *GpgKey `json:"gpg_key,omitempty"`
}

// Group is a named set of users. Sharing with a group means sharing with
// every current member individually.
type Group struct {
	// ID is the server-side UUID of the group.
	ID string `json:"id"`

	// Name is the unique display name of the group.
	Name string `json:"name"`

	// MemberIDs lists the user IDs of the group members.
	MemberIDs []string `json:"member_ids"`
}

// Recipient is either a User or a Group a resource is shared with. Exactly
// one of the two fields is non-nil.
type Recipient struct {
	User  *User
	Group *Group
}

// ID returns the identifier of the underlying user or group.
func (r Recipient) ID() string {
	if r.User != nil {
		return r.User.ID
	}
	if r.Group != nil {
		return r.Group.ID
	}
	return ""
}

// IsGroup reports whether the recipient is a group.
func (r Recipient) IsGroup() bool {
	return r.Group != nil
}

// String returns the human-readable name of the recipient: the username for
// users, the group name for groups.
func (r Recipient) String() string {
	if r.User != nil {
		return r.User.Username
	}
	if r.Group != nil {
		return r.Group.Name
	}
	return ""
}
