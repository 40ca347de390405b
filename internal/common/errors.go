// Package common defines shared constants and kinded errors used across the
// service and transport layers. Callers should use errors.Is to match the
// kind sentinels below and errors.As to read the message.
package common

import (
	"errors"
)

// Kind is a stable, machine-readable error category.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindBadRequest   Kind = "BAD_REQUEST"
	KindExpired      Kind = "EXPIRED"
	KindCipher       Kind = "CIPHER_ERROR"
	KindInternal     Kind = "INTERNAL"
)

// Error is a domain error carrying a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind. The message is not
// compared, so the sentinels below match any error of their kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a domain error with a kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a domain error that keeps cause reachable through errors.Is/As.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
// when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

var (
	// Repository-level errors.
	ErrNotFound = New(KindNotFound, "not found")

	// Service-level errors.
	ErrConflict     = New(KindConflict, "conflict")
	ErrUnauthorized = New(KindUnauthorized, "unauthorized")
	ErrBadRequest   = New(KindBadRequest, "bad request")
	ErrExpired      = New(KindExpired, "expired")
	ErrInternal     = New(KindInternal, "internal error")

	// ErrCipher marks field decryption failures: data corruption or a key/IV
	// mismatch, never a client input problem.
	ErrCipher = New(KindCipher, "field cipher error")

	// ErrInvalidToken is returned for every token verification failure.
	ErrInvalidToken = New(KindUnauthorized, "invalid token")
)
