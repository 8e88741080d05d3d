package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

// Kind classifies why a call to the EcoCheck API did not succeed.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindServer
	KindAuthExpired
	KindForbidden
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindAuthExpired:
		return "auth_expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is returned for every failed call. Message holds the server-provided
// text when the response carried one.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the taxonomy sentinel so callers can use errors.Is.
func (e *Error) Unwrap() []error {
	errs := []error{sentinel(e.Kind)}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func sentinel(k Kind) error {
	switch k {
	case KindNetwork:
		return apperrors.ErrNetworkUnreachable
	case KindAuthExpired:
		return apperrors.ErrAuthExpired
	case KindForbidden:
		return apperrors.ErrForbidden
	case KindNotFound:
		return apperrors.ErrFeatureUnavailable
	case KindValidation:
		return apperrors.ErrValidation
	default:
		return apperrors.ErrServer
	}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindAuthExpired
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}

// Validation builds a client-side error that never reached the network.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the Kind carried by err, or 0 when err did not come from this package.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// MessageOf returns the server-provided message carried by err, else fallback.
func MessageOf(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
