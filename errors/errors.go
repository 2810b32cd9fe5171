package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// MissingCredential creates a new AppError for a missing API key or token.
// The key is the environment variable the credential is expected in.
func MissingCredential(provider, key string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingCredential,
		Message: fmt.Sprintf("Missing credential for %s: set %s in the environment or .env file.", provider, key),
		Details: map[string]any{"provider": provider, "env_key": key},
	}
}

// InvalidConfig creates a new AppError for a configuration that failed validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: fmt.Sprintf("Invalid configuration: %s", reason),
	}
}

// SampleNotFound creates a new AppError when the input directory holds no audio sample.
func SampleNotFound(dir string) *AppError {
	return &AppError{
		Code:    ErrCodeSampleNotFound,
		Message: fmt.Sprintf("No audio sample found in %s. Supported formats: mp3, wav, m4a, flac, ogg, webm.", dir),
		Details: map[string]any{"dir": dir},
	}
}

// InvalidSample creates a new AppError for a sample that could not be read or probed.
func InvalidSample(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidSample,
		Message: fmt.Sprintf("Audio sample %s could not be read.", path),
		Details: map[string]any{"path": path},
		Cause:   cause,
	}
}

// Backend creates a new AppError for a failed backend call.
func Backend(provider string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeBackend,
		Message: fmt.Sprintf("The %s backend call failed.", provider),
		Details: map[string]any{"provider": provider},
		Cause:   cause,
	}
}

// UnexpectedShape creates a new AppError for an undecodable backend response.
func UnexpectedShape(provider string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeUnexpectedShape,
		Message: fmt.Sprintf("The %s backend returned a response with an unexpected shape.", provider),
		Details: map[string]any{"provider": provider},
		Cause:   cause,
	}
}

// Internal creates a new AppError for an unexpected harness failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred.",
		Cause:   cause,
	}
}

// Storage creates a new AppError for a failed result write.
func Storage(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeStorage,
		Message: "The result record could not be persisted.",
		Cause:   cause,
	}
}

// --- Inspection helpers ---

// CodeOf extracts the ErrorCode from an error chain.
// Returns ErrCodeInternal for errors that are not AppErrors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsConfig reports whether the error is a configuration error.
func IsConfig(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeMissingCredential || code == ErrCodeInvalidConfig
}

// IsInput reports whether the error is an input error.
func IsInput(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeSampleNotFound || code == ErrCodeInvalidSample
}

// IsBackend reports whether the error is a backend error.
func IsBackend(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeBackend || code == ErrCodeUnexpectedShape
}
