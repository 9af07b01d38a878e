package adapter

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrServerFailure   = errors.New("server failure")
	ErrGPGAuthRejected = errors.New("gpgauth stage rejected by server")
	ErrMissingHeader   = errors.New("expected gpgauth header missing")
)
