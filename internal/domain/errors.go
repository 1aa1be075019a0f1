package domain

import (
	"errors"
	"fmt"
)

// Repository error types

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrUnexpected indicates a backend level failure (I/O, constraint, serialization)
	ErrUnexpected = errors.New("unexpected repository error")

	// ErrDuplicate indicates a record with the same unique key already exists
	ErrDuplicate = errors.New("duplicate record")
)

// NotFoundError is returned when no record exists for ID
type NotFoundError struct {
	ID int
}

// NewNotFoundError func
func NewNotFoundError(id int) *NotFoundError {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found, id is %d", e.ID)
}

// Is reports whether target is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnexpectedError wraps a backend specific failure
type UnexpectedError struct {
	Detail string
	Err    error
}

// NewUnexpectedError func
func NewUnexpectedError(err error) *UnexpectedError {
	return &UnexpectedError{Detail: err.Error(), Err: err}
}

func (e *UnexpectedError) Error() string {
	return "unexpected error: " + e.Detail
}

// Is reports whether target is ErrUnexpected
func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
