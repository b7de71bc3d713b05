package errors

import (
	"errors"
	"fmt"
)

// ErrMethodNotImplemented is returned by repository contract methods that an
// adapter did not override.
var ErrMethodNotImplemented = errors.New("METHOD_NOT_IMPLEMENTED")

// ErrDuplicateLike is returned by storage when (comment, owner) is already liked.
var ErrDuplicateLike = errors.New("like already exists")

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation error codes raised by entity construction.
const (
	NotContainNeededProperty     = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError reports a malformed or incomplete payload.
// Error() returns the machine code, Message is meant for the client.
type ValidationError struct {
	Entity  string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Code
}

// NotFoundError reports a referenced resource that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError reports that the acting identity does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func NewAuthorization() *AuthorizationError {
	return &AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
}

// NotImplemented wraps ErrMethodNotImplemented with the contract name,
// e.g. COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED.
func NotImplemented(contract string) error {
	return fmt.Errorf("%s.%w", contract, ErrMethodNotImplemented)
}

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's chain is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	return Is[*NotFoundError](err)
}

func IsAuthorization(err error) bool {
	return Is[*AuthorizationError](err)
}

func IsValidation(err error) bool {
	return Is[*ValidationError](err)
}
