// Package apperror holds the typed failures every layer returns and their
// mapping onto HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	jujuerrors "github.com/juju/errors"
)

// Kind distinguishes the validation failures the HTTP layer reports differently.
type Kind string

const (
	KindInvalid Kind = "invalid"
	KindBadID   Kind = "bad-id"
)

// ValidationError carries one message per violated rule.
type ValidationError struct {
	Kind     Kind
	Messages []string
}

// NewValidation returns a ValidationError for messages, or nil when there are none.
func NewValidation(messages ...string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Kind: KindInvalid, Messages: messages}
}

// BadID reports a path id that is not a positive integer.
func BadID(raw string) error {
	return &ValidationError{
		Kind:     KindBadID,
		Messages: []string{fmt.Sprintf("invalid id %q", raw)},
	}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == jujuerrors.NotValid
}

// NotFoundError reports a referenced id that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == jujuerrors.NotFound
}

// ConflictError reports a write the store refused because of a uniqueness
// or reference constraint.
type ConflictError struct {
	Message string
	Err     error
}

func Conflict(message string, err error) error {
	return &ConflictError{Message: message, Err: err}
}

func (e *ConflictError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error { return e.Err }

func (e *ConflictError) Is(target error) bool {
	return target == jujuerrors.AlreadyExists
}

// StoreError is any other persistence failure. It is fatal for the request.
type StoreError struct {
	Op  string
	Err error
}

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// HTTPStatus maps err onto the status code returned to clients.
func HTTPStatus(err error) int {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Messages returns the user-facing messages for err. Store failures are
// reduced to a generic message, their cause is only logged.
func Messages(err error) []string {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Messages
	case errors.As(err, &notFoundErr):
		return []string{notFoundErr.Error()}
	case errors.As(err, &conflictErr):
		return []string{conflictErr.Message}
	default:
		return []string{"internal server error"}
	}
}

// Label names the kind of err for logs and metric labels: "invalid",
// "bad-id", "not-found", "conflict" or "store". Errors outside the taxonomy
// have no label.
func Label(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
		storeErr      *StoreError
	)
	switch {
	case errors.As(err, &validationErr):
		return string(validationErr.Kind)
	case errors.As(err, &notFoundErr):
		return "not-found"
	case errors.As(err, &conflictErr):
		return "conflict"
	case errors.As(err, &storeErr):
		return "store"
	default:
		return ""
	}
}
