package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the payment pipeline can surface.
// Raw dependency errors are wrapped into one of these before they reach a
// caller; the wrapped cause is logged, never returned in a response body.
type ErrorKind string

const (
	ErrInvalidAmount             ErrorKind = "INVALID_AMOUNT"
	ErrMissingField              ErrorKind = "MISSING_FIELD"
	ErrInvalidSignature          ErrorKind = "INVALID_SIGNATURE"
	ErrAmountMismatch            ErrorKind = "AMOUNT_MISMATCH"
	ErrGatewayUnavailable        ErrorKind = "GATEWAY_UNAVAILABLE"
	ErrGatewayVerificationFailed ErrorKind = "GATEWAY_VERIFICATION_FAILED"
	ErrPersistenceFailure        ErrorKind = "PERSISTENCE_FAILURE"
	ErrIdentityMismatch          ErrorKind = "IDENTITY_MISMATCH"
	ErrUnauthenticated           ErrorKind = "UNAUTHENTICATED"
)

type AppError struct {
	Kind    ErrorKind
	Message string // safe for clients
	Err     error  // underlying cause, log-only
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting unclassified errors to a
// persistence failure so nothing leaks through unmapped.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ErrPersistenceFailure
}

// MessageOf returns the client-safe message for err.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal error"
}

// IsTrustError reports whether the failure means the submitted payment data
// could not be trusted, as opposed to bad input or an unavailable dependency.
func IsTrustError(err error) bool {
	switch KindOf(err) {
	case ErrInvalidSignature, ErrAmountMismatch, ErrIdentityMismatch:
		return true
	}
	return false
}
