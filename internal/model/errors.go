package model

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes model and storage errors.
type ErrorCode string

const (
	// CodeValidation indicates bad constructor or setter input.
	CodeValidation ErrorCode = "VALIDATION"

	// CodeState indicates an operation that is invalid for the entity's
	// current identity state.
	CodeState ErrorCode = "STATE"

	// CodeNotFound indicates a lookup by identity matched no row.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeStorage indicates the database rejected or failed an operation.
	CodeStorage ErrorCode = "STORAGE"
)

// Error is the single error type returned by periodical packages.
//
// Err carries the underlying cause (driver error, validator error) and is
// reachable through errors.Unwrap.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Entity is the entity kind involved ("author", "magazine", "article").
	Entity string

	// Op names the failed operation (e.g. "save", "delete", "articles").
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Entity != "" && e.Op != "" {
		msg = fmt.Sprintf("%s %s: %s", e.Op, e.Entity, e.Message)
	} else if e.Entity != "" {
		msg = fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError reports invalid input for an entity field.
func ValidationError(entity, message string) *Error {
	return &Error{Code: CodeValidation, Entity: entity, Message: message}
}

// StateError reports an operation that the entity's identity state forbids.
func StateError(entity, op, message string) *Error {
	return &Error{Code: CodeState, Entity: entity, Op: op, Message: message}
}

// NotFoundError reports a lookup that matched no row.
func NotFoundError(entity string, id int64) *Error {
	return &Error{
		Code:    CodeNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("id %d not found", id),
	}
}

// StorageError wraps a database failure.
func StorageError(entity, op string, err error) *Error {
	return &Error{
		Code:    CodeStorage,
		Entity:  entity,
		Op:      op,
		Message: "storage failure",
		Err:     err,
	}
}

// CodeOf returns the ErrorCode of err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsValidationError returns true if err is a validation error.
func IsValidationError(err error) bool {
	return CodeOf(err) == CodeValidation
}

// IsStateError returns true if err is a state error.
func IsStateError(err error) bool {
	return CodeOf(err) == CodeState
}

// IsNotFoundError returns true if err is a not-found error.
func IsNotFoundError(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsStorageError returns true if err is a storage error.
func IsStorageError(err error) bool {
	return CodeOf(err) == CodeStorage
}
