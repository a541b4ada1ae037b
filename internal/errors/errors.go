// Package errors provides standardized error types for starman-dpkg.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// PkgError is the primary error type, containing:
//   - Code: Categorizes the error (INVALID_VALUE, MISSING_FIELD, etc.)
//   - Message: Human-readable error description
//   - Field: The configuration field involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrInvalidWebServer   // web_server outside apache/nginx/all
//	errors.ErrInvalidModuleToken // apache module name fails validation
//	errors.ErrMissingField       // required configuration field absent
//	errors.ErrTemplateNotFound   // bundled template asset missing
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Required field absent
//	return errors.MissingField("starman_port")
//
//	// Enumeration value out of range
//	return errors.InvalidValue("web_server", "must be one of: apache, nginx, all")
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeConfig, "failed to load config", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrMissingField) {
//	    // Handle missing field case
//	}
//
// Use errors.As for type assertion:
//
//	var pkgErr *errors.PkgError
//	if errors.As(err, &pkgErr) {
//	    fmt.Printf("Error code: %s, Field: %s\n", pkgErr.Code, pkgErr.Field)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE" // Enumeration value out of range
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN" // Token fails format validation
	ErrCodeMissingField ErrorCode = "MISSING_FIELD" // Required field absent
	ErrCodeResource     ErrorCode = "RESOURCE"      // Bundled template asset missing
	ErrCodeConfig       ErrorCode = "CONFIG"        // Configuration file error
	ErrCodeInternal     ErrorCode = "INTERNAL"      // Internal/unexpected error
)

// PkgError represents a structured error with context about the operation.
type PkgError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Field   string    // Configuration field (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *PkgError) Error() string {
	if e.Field != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Message, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *PkgError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *PkgError) Is(target error) bool {
	t, ok := target.(*PkgError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrInvalidWebServer indicates web_server is not apache, nginx, or all.
	ErrInvalidWebServer = &PkgError{Code: ErrCodeInvalidValue, Message: "invalid web server"}

	// ErrInvalidModuleToken indicates an apache module name failed validation.
	ErrInvalidModuleToken = &PkgError{Code: ErrCodeInvalidToken, Message: "invalid apache module name"}

	// ErrMissingField indicates a required configuration field is absent.
	ErrMissingField = &PkgError{Code: ErrCodeMissingField, Message: "required field missing"}

	// ErrTemplateNotFound indicates a bundled template asset could not be located.
	ErrTemplateNotFound = &PkgError{Code: ErrCodeResource, Message: "template not found"}

	// ErrConfigInvalid indicates the configuration file is invalid or corrupt.
	ErrConfigInvalid = &PkgError{Code: ErrCodeConfig, Message: "invalid configuration"}
)

// MissingField creates an error for a required field that is absent.
func MissingField(field string) error {
	return &PkgError{
		Code:    ErrCodeMissingField,
		Message: "required field missing",
		Field:   field,
	}
}

// InvalidValue creates an error for an enumeration value out of range.
func InvalidValue(field, msg string) error {
	return &PkgError{
		Code:    ErrCodeInvalidValue,
		Message: msg,
		Field:   field,
	}
}

// InvalidToken creates an error for a token that fails format validation.
func InvalidToken(field, msg string) error {
	return &PkgError{
		Code:    ErrCodeInvalidToken,
		Message: msg,
		Field:   field,
	}
}

// Resource creates an error for a missing bundled template asset.
func Resource(name string, err error) error {
	return &PkgError{
		Code:    ErrCodeResource,
		Message: fmt.Sprintf("template %s not found in resource bundle", name),
		Err:     err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &PkgError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
