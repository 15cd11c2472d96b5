/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when a presence check fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedPayload is returned when a request body cannot be decoded
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrStorage is returned when the backing store rejects or fails an operation
	ErrStorage = errors.New("storage failure")
)

// StorageKind classifies a storage failure.
type StorageKind string

const (
	KindThrottled    StorageKind = "throttled"
	KindAccessDenied StorageKind = "access_denied"
	KindTableMissing StorageKind = "table_missing"
	KindRejected     StorageKind = "rejected"
	KindUnavailable  StorageKind = "unavailable"
	KindUnknown      StorageKind = "unknown"
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a failed presence check
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ParseError represents a request body that is not valid structured data
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "malformed payload"
	}
	return fmt.Sprintf("malformed payload: %v", e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedPayload
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StorageError represents a failed store operation. Code, StatusCode and
// RequestID are filled in when the backend reports them.
type StorageError struct {
	Operation  string
	Kind       StorageKind
	Code       string
	StatusCode int
	RequestID  string
	Err        error
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed (%s, %s): %v", e.Operation, e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s failed (%s): %v", e.Operation, e.Kind, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same write could succeed if repeated later.
func (e *StorageError) Retryable() bool {
	return e.Kind == KindThrottled || e.Kind == KindUnavailable
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(recordType, key string) error {
	return &NotFoundError{Type: recordType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewParseError creates a new ParseError
func NewParseError(err error) error {
	return &ParseError{Err: err}
}

// NewStorageError creates a new StorageError without backend metadata
func NewStorageError(operation string, kind StorageKind, err error) error {
	return &StorageError{Operation: operation, Kind: kind, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsParseError checks if an error is a malformed payload error
func IsParseError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

// IsStorageError checks if an error is a storage error
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

// AsStorageError extracts the StorageError from an error chain.
func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
