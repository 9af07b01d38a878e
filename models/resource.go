// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resource is a stored credential record: a name, an optional URI, username
// and description, plus a secret that only ever leaves the server as armored
// OpenPGP ciphertext addressed to the current user.
type Resource struct {
	// ID is the server-side UUID of the resource. Empty for resources that
	// have not been saved yet.
	ID string `json:"id"`

	// Name is the display name of the resource. Mandatory.
	Name string `json:"name"`

	// URI is the location the credential applies to (a URL, a host, ...).
	URI string `json:"uri"`

	// Username is the account name the secret belongs to.
	Username string `json:"username"`

	// Description is free-form text attached to the resource.
	Description string `json:"description"`

	// Tags are the tag slugs attached to the resource. Order carries no
	// meaning; matching treats them as a set.
	Tags []string `json:"tags,omitempty"`

	// EncryptedSecret is the armored OpenPGP ciphertext of the secret,
	// addressed to exactly one public key — the current user's when the
	// resource was fetched for personal viewing. Empty when the listing
	// endpoint was asked not to include secrets.
	EncryptedSecret SecretCiphertext `json:"encrypted_secret,omitempty"`
}

// DecryptedResource pairs a resource with its plaintext secret. It exists
// only in process memory; it is never serialized back to the server as is.
type DecryptedResource struct {
	Resource

	// Secret is the plaintext recovered from EncryptedSecret.
	Secret string `json:"secret"`
}
