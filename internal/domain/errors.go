package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed match request (caller's fault).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCatalogNotReady signals that no catalog snapshot has been loaded yet.
	ErrCatalogNotReady = errors.New("catalog not ready")
	// ErrDogNotFound signals a missing dog record.
	ErrDogNotFound = errors.New("dog not found")
)
