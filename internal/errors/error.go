package errors

import (
	"errors"
	"fmt"
)

const (
	ErrInternalError   = ErrorType("internal error")
	ErrNotFound        = ErrorType("not found")
	ErrAlreadyExists   = ErrorType("already exists")
	ErrInvalidArgument = ErrorType("invalid argument")
	ErrFailedPrecond   = ErrorType("failed precondition")
	ErrInvalidState    = ErrorType("invalid state")
)

type ErrorType string

func (e ErrorType) String() string {
	return string(e)
}

// DomainError is the error returned from the domain layer. It carries the
// entity the failure belongs to so callers can report which part of the
// system rejected the input.
type DomainError struct {
	ErrorType ErrorType
	Entity    string
	Message   string

	WrappedErr error
}

func NewError(errType ErrorType, entity, message string) *DomainError {
	return &DomainError{
		ErrorType:  errType,
		Entity:     entity,
		Message:    message,
		WrappedErr: nil,
	}
}

func InvalidArgument(entity, message string) *DomainError {
	return NewError(ErrInvalidArgument, entity, message)
}

func NotFound(entity, message string) *DomainError {
	return NewError(ErrNotFound, entity, message)
}

func AlreadyExists(entity, message string) *DomainError {
	return NewError(ErrAlreadyExists, entity, message)
}

func FailedPrecondition(entity, message string) *DomainError {
	return NewError(ErrFailedPrecond, entity, message)
}

func InternalError(entity, message string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    message,
		WrappedErr: err,
	}
}

// Wrap keeps err as the cause while recording the entity and message of the
// layer that observed it.
func Wrap(entity, message string, err error) *DomainError {
	var de *DomainError
	errType := ErrInternalError
	if errors.As(err, &de) {
		errType = de.ErrorType
	}

	return &DomainError{
		ErrorType:  errType,
		Entity:     entity,
		Message:    message,
		WrappedErr: err,
	}
}

// AddErrContext adds context to a domain error without changing its type.
func AddErrContext(err error, entity, message string) *DomainError {
	return Wrap(entity, message, err)
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s for entity %s: %s", e.ErrorType, e.Entity, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

func (e *DomainError) DebugString() string {
	var wrappedString string
	if e.WrappedErr != nil {
		var de *DomainError
		if errors.As(e.WrappedErr, &de) {
			wrappedString = de.DebugString()
		} else {
			wrappedString = e.WrappedErr.Error()
		}
	}

	return fmt.Sprintf("%s (%s: %s) [%s]", e.Message, e.ErrorType, e.Entity, wrappedString)
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
