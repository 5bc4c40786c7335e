// Package errors provides standardized error types for the ghostty-config
// CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// ConfigError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, DISCOVERY, etc.)
//   - Message: Human-readable error description
//   - Key: The config key or file path involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Common error scenarios have pre-defined sentinel errors:
//
//	errors.ErrGhosttyNotFound // ghostty binary could not be located
//	errors.ErrOptionNotFound  // config key is not in the schema
//	errors.ErrThemesNotFound  // no themes directory on this system
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Unknown schema key
//	return errors.NotFound("font-siez")
//
//	// Wrapping an I/O failure with its operation context
//	return errors.WrapPath(errors.ErrCodeIO, "failed to write config", path, err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrOptionNotFound) {
//	    // Handle unknown key
//	}
//
// Use errors.As for type assertion:
//
//	var cfgErr *errors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("Error code: %s, Key: %s\n", cfgErr.Code, cfgErr.Key)
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
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"  // Schema key or resource not found
	ErrCodeDiscovery  ErrorCode = "DISCOVERY"  // Ghostty binary discovery failed
	ErrCodeExec       ErrorCode = "EXEC"       // Running the ghostty binary failed
	ErrCodeIO         ErrorCode = "IO"         // Filesystem read/write error
	ErrCodeConfig     ErrorCode = "CONFIG"     // Tool settings error
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// ConfigError represents a structured error with context about the operation.
type ConfigError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Key     string    // Config key or file path (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Key != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Key, e.Message, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrGhosttyNotFound indicates the ghostty binary could not be located.
	ErrGhosttyNotFound = &ConfigError{Code: ErrCodeDiscovery, Message: "could not find ghostty binary"}

	// ErrOptionNotFound indicates the config key is not in the schema.
	ErrOptionNotFound = &ConfigError{Code: ErrCodeNotFound, Message: "unknown config option"}

	// ErrThemeNotFound indicates the named theme is not installed.
	ErrThemeNotFound = &ConfigError{Code: ErrCodeNotFound, Message: "theme not found"}

	// ErrThemesNotFound indicates no themes directory exists on this system.
	ErrThemesNotFound = &ConfigError{Code: ErrCodeNotFound, Message: "themes directory not found"}

	// ErrSettingsInvalid indicates the tool settings file is invalid.
	ErrSettingsInvalid = &ConfigError{Code: ErrCodeConfig, Message: "invalid settings file"}
)

// NotFound creates an error for a key that is not in the schema.
func NotFound(key string) error {
	return &ConfigError{
		Code:    ErrCodeNotFound,
		Message: "unknown config option",
		Key:     key,
	}
}

// Discovery creates a binary discovery error with a custom message.
func Discovery(msg string) error {
	return &ConfigError{
		Code:    ErrCodeDiscovery,
		Message: msg,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &ConfigError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error carrying the file path or key it concerns.
func WrapPath(code ErrorCode, msg, path string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Key:     path,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
