// Package apperrors defines the error taxonomy shared by all services.
// Every failure surfaced to a handler is one of four kinds so callers can
// branch on the kind rather than the message.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnauthenticated Kind = iota
	KindBadRequest
	KindNotFound
	KindForbidden
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Unauthenticated(message string) *Error {
	if message == "" {
		message = "not authenticated"
	}
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "forbidden"
	}
	return &Error{Kind: KindForbidden, Message: message}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsUnauthenticated(err error) bool { return IsKind(err, KindUnauthenticated) }
func IsBadRequest(err error) bool      { return IsKind(err, KindBadRequest) }
func IsNotFound(err error) bool        { return IsKind(err, KindNotFound) }
func IsForbidden(err error) bool       { return IsKind(err, KindForbidden) }

// HTTPStatus maps an error to its response code. Unrecognized errors are
// treated as internal failures.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
