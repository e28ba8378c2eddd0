// Package errors provides custom error types for the paxmark system.
// These errors enable programmatic error checking and consistent
// user-facing messages across the CLI.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the paxmark system
var (
	// ErrNotFound indicates that a target file was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported indicates the filesystem does not support extended attributes
	ErrUnsupported = errors.New("extended attributes not supported")

	// ErrPermission indicates the caller lacks permission on the target
	ErrPermission = errors.New("permission denied")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// AttrError represents an error during an extended attribute operation
type AttrError struct {
	Operation string // "get", "set", "remove"
	Path      string
	Attr      string
	Err       error
}

// Error implements the error interface
func (e *AttrError) Error() string {
	return fmt.Sprintf("failed to %s %s on %s: %v", e.Operation, e.Attr, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *AttrError) Unwrap() error {
	return e.Err
}

// NewAttrError creates a new AttrError
func NewAttrError(operation, path, attr string, err error) *AttrError {
	return &AttrError{
		Operation: operation,
		Path:      path,
		Attr:      attr,
		Err:       err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsupported checks if an error indicates missing xattr support
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// IsPermission checks if an error is a permission error
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapAttr wraps an error as an AttrError
func WrapAttr(operation, path, attr string, err error) error {
	if err == nil {
		return nil
	}
	return NewAttrError(operation, path, attr, err)
}
