// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wrench application runtime.
//
// It wires the key store, the server adapter, the domain services and the
// local resource cache into a single [App] that the command layer drives:
// login, search, reveal, add, share and dump flows.
package client
