package errors

import "errors"

// Outcome taxonomy shared by the API adapter, the mutation controller and the handlers.
var (
	ErrNetworkUnreachable = errors.New("api unreachable")
	ErrServer             = errors.New("api server error")
	ErrAuthExpired        = errors.New("session expired")
	ErrForbidden          = errors.New("forbidden")
	ErrFeatureUnavailable = errors.New("feature not supported by this deployment")
	ErrValidation         = errors.New("validation failed")

	ErrNotFound       = errors.New("resource not found")
	ErrSessionMissing = errors.New("no active session")
)
