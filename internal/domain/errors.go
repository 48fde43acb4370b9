package domain

import (
	"errors"
	"fmt"
)

// NotFoundError means a referenced user, item or booking does not exist.
// Booking lookup also uses it when the caller is neither the booker nor
// the owner, so that non-participants cannot probe for existence.
type NotFoundError struct {
	msg string
}

func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.msg }

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

// ForbiddenError means the caller is identified but lacks the right to
// perform the operation. Used only where existence is not meant to be hidden.
type ForbiddenError struct {
	msg string
}

func NewForbidden(format string, args ...any) *ForbiddenError {
	return &ForbiddenError{msg: fmt.Sprintf(format, args...)}
}

func (e *ForbiddenError) Error() string { return e.msg }

func IsForbidden(err error) bool {
	var t *ForbiddenError
	return errors.As(err, &t)
}

// ValidationError means a business rule was violated: malformed booking
// window, unavailable item, already-decided booking, missing qualifying
// rental for commenting.
type ValidationError struct {
	msg string
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

// ConflictError means the request collides with existing state, e.g. a
// duplicate user email.
type ConflictError struct {
	msg string
}

func NewConflict(format string, args ...any) *ConflictError {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string { return e.msg }

func IsConflict(err error) bool {
	var t *ConflictError
	return errors.As(err, &t)
}

// UnsupportedStateError means a booking list was requested with an
// unrecognized state token. Reported to clients in its own envelope,
// distinct from ordinary validation failures.
type UnsupportedStateError struct {
	msg string
}

func NewUnsupportedState(format string, args ...any) *UnsupportedStateError {
	return &UnsupportedStateError{msg: fmt.Sprintf(format, args...)}
}

func (e *UnsupportedStateError) Error() string { return e.msg }

func IsUnsupportedState(err error) bool {
	var t *UnsupportedStateError
	return errors.As(err, &t)
}
