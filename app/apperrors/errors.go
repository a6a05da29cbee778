package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindBadRequest
)

// Error carries a client-safe message plus an error kind that maps onto an
// HTTP status. Wrapped causes stay available through errors.Unwrap.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// Message is the text safe to return to API clients.
func (e *Error) Message() string { return e.msg }

func NotFound(format string, args ...interface{}) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...interface{}) error {
	return &Error{kind: KindBadRequest, msg: fmt.Sprintf(format, args...)}
}

func Internal(msg string, err error) error {
	return &Error{kind: KindInternal, msg: msg, err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsBadRequest(err error) bool { return KindOf(err) == KindBadRequest }

// StatusCode maps an error kind to its HTTP status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to expose; internal errors collapse
// to a generic message so storage details never leak.
func ClientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.kind != KindInternal {
		return e.msg
	}
	return "internal server error"
}
