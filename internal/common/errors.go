// Package common defines shared constants and sentinel errors used across
// benfordapp components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Request classification errors surfaced to API callers.
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Job lifecycle errors.
	ErrJobNotReady        = errors.New("job status is pending")
	ErrJobUnknownFailure  = errors.New("job status is unknown")
	ErrJobEmptyResult     = errors.New("unknown, results file was empty")
	ErrJobUnexpectedState = errors.New("unexpected job status")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Internal flow control.
	ErrInternal       = errors.New("internal error")
	ErrInfrastructure = errors.New("infrastructure fault")
)
