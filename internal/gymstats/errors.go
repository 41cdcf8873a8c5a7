package gymstats

import "net/http"

type errKind int

const (
	kindValidation errKind = iota + 1
	kindState
	kindNotFound
)

// Error is a typed domain failure. Every sentinel of the gymstats packages
// is an *Error, so callers classify with IsValidation / IsState and
// match exact causes with errors.Is.
type Error struct {
	kind errKind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// NewValidationError is for bad input shape or range. The caller can fix the request.
func NewValidationError(msg string) *Error {
	return &Error{kind: kindValidation, msg: msg}
}

// NewStateError is for a precondition violation, e.g. mutating an ended session.
func NewStateError(msg string) *Error {
	return &Error{kind: kindState, msg: msg}
}

// NewNotFoundError is a state error for a missing (or foreign) entity.
func NewNotFoundError(msg string) *Error {
	return &Error{kind: kindNotFound, msg: msg}
}

func IsValidation(err error) bool {
	return hasKind(err, kindValidation)
}

// IsState reports state errors, not-found included.
func IsState(err error) bool {
	return hasKind(err, kindState) || hasKind(err, kindNotFound)
}

func IsNotFound(err error) bool {
	return hasKind(err, kindNotFound)
}

func hasKind(err error, kind errKind) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		return e.kind == kind
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if hasKind(inner, kind) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return hasKind(e.Unwrap(), kind)
	default:
		return false
	}
}

// HTTPStatus maps a domain error to a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsState(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
