package client

import "errors"

var (
	// ErrLoginRequired indicates an operation that needs a session was
	// called before Login.
	ErrLoginRequired = errors.New("login required")

	// ErrCacheUnavailable indicates an offline operation was requested but
	// no local cache database is configured or reachable.
	ErrCacheUnavailable = errors.New("local resource cache unavailable")
)
