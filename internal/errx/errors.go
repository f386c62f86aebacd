// Package errx defines the typed authentication error used across the
// client: a flat taxonomy of four kinds plus a user-presentable message
// and an optional HTTP status code. Callers match errors with errors.As
// (via the As helper) and inspect Kind; the wrapped cause is for logs only.
package errx

import "errors"

// Kind classifies an authentication failure.
type Kind string

const (
	// KindValidation marks malformed caller input; recoverable by
	// correcting the input.
	KindValidation Kind = "validation"

	// KindInvalidCredentials marks an identity rejected by the backend;
	// recoverable by re-entering credentials.
	KindInvalidCredentials Kind = "invalid_credentials"

	// KindNetwork marks a transient transport failure; recoverable by
	// retrying.
	KindNetwork Kind = "network"

	// KindUnknown covers everything else, including malformed backend
	// responses and persistence failures.
	KindUnknown Kind = "unknown"
)

// Error is the tagged authentication error. Message is presentable to the
// end user verbatim; StatusCode is zero unless the failure originated from
// an HTTP response.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error and returns e.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// Validation builds a caller-input error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// InvalidCredentials builds a rejected-identity error carrying the HTTP
// status that produced it.
func InvalidCredentials(msg string, statusCode int) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: msg, StatusCode: statusCode}
}

// Network builds a transient transport error.
func Network(msg string) *Error {
	return &Error{Kind: KindNetwork, Message: msg}
}

// Unknown builds a catch-all error.
func Unknown(msg string) *Error {
	return &Error{Kind: KindUnknown, Message: msg}
}

// UnknownStatus builds a catch-all error for an unexpected HTTP response.
func UnknownStatus(msg string, statusCode int) *Error {
	return &Error{Kind: KindUnknown, Message: msg, StatusCode: statusCode}
}

// As unwraps err into *Error if any error in the chain is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
