package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBackendUnavailable indicates the backend handle is not ready;
	// mutations reject with this rather than silently no-opping
	ErrBackendUnavailable = errors.New("backend is not available")

	// ErrBackendOffline indicates the backend service is unreachable
	ErrBackendOffline = errors.New("backend is unreachable")

	// ErrAuthFailed indicates the session token was rejected
	ErrAuthFailed = errors.New("authentication token is invalid")

	// ErrInvalidInput indicates a field failed validation before any
	// network call was issued
	ErrInvalidInput = errors.New("invalid input")
)
