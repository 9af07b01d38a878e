package models

import "encoding/json"

// APIResponse is the envelope every vault API endpoint wraps its payload in.
// Header carries request bookkeeping, Body the actual payload, decoded by the
// caller into the expected shape.
type APIResponse struct {
	Header APIResponseHeader `json:"header"`
	Body   json.RawMessage   `json:"body"`
}

// APIResponseHeader is the bookkeeping part of an API envelope.
type APIResponseHeader struct {
	// ID is the server-assigned request identifier, useful when reporting
	// failed calls.
	ID string `json:"id"`

	// Status is "success" or "error".
	Status string `json:"status"`

	// Message is the human-readable outcome description.
	Message string `json:"message"`

	// Code is the HTTP status the server claims to have answered with.
	Code int `json:"code"`
}

// ShareRequest is the input of the share endpoint: the full replacement set
// of secrets for new recipients plus the permission changes, applied
// atomically by the server. The request is translated into the server's wire
// shape by the adapter.
type ShareRequest struct {
	// Secrets holds one encrypted copy of the resource secret per new
	// recipient user.
	Secrets []Secret

	// Permissions holds the permission records to create. A permission
	// with an empty ID is new.
	Permissions []Permission
}
