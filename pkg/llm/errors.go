package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCompletion indicates the endpoint answered the HTTP round trip but
// returned no choices or empty content. Callers decide whether to fail closed
// (validator) or surface a server error (translator).
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// ErrorType classifies gateway failures.
type ErrorType string

const (
	ErrorTypeAuth     ErrorType = "auth"
	ErrorTypeModel    ErrorType = "model"
	ErrorTypeEndpoint ErrorType = "endpoint"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// Error represents a structured gateway error with classification.
type Error struct {
	Type       ErrorType // Classification of the error
	Message    string    // Human-readable message
	Cause      error     // Underlying error
	StatusCode int       // HTTP status code if applicable
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string
	parts = append(parts, string(e.Type))
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	parts = append(parts, e.Message)

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Cause)
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new structured gateway error.
func NewError(errType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// ClassifyError categorizes an error and returns a structured Error.
// This consolidates error classification logic for consistent handling.
func ClassifyError(err error) *Error {
	if err == nil {
		return nil
	}

	// Check if already an *Error
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr
	}

	errStr := err.Error()
	lower := strings.ToLower(errStr)

	// Extract HTTP status code from error string
	statusCode := 0
	for _, code := range []int{400, 401, 403, 404, 429, 500, 502, 503, 504} {
		if strings.Contains(errStr, fmt.Sprintf("%d", code)) {
			statusCode = code
			break
		}
	}

	// Authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "invalid api key") {
		gwErr = NewError(ErrorTypeAuth, "authentication failed", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	// Model not found
	if strings.Contains(lower, "model") && (strings.Contains(lower, "not found") ||
		strings.Contains(lower, "does not exist")) {
		gwErr = NewError(ErrorTypeModel, "model not found", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	// Endpoint not found
	if strings.Contains(errStr, "404") {
		gwErr = NewError(ErrorTypeEndpoint, "endpoint not found", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	// Connection errors
	if strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host") {
		gwErr = NewError(ErrorTypeEndpoint, "connection failed", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	// Timeout and deadline exceeded
	if strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "deadline exceeded") ||
		strings.Contains(lower, "context canceled") {
		gwErr = NewError(ErrorTypeEndpoint, "request timeout", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	// Rate limiting
	if strings.Contains(errStr, "429") || strings.Contains(lower, "rate limit") {
		gwErr = NewError(ErrorTypeUnknown, "rate limited", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	// 5xx server errors
	if strings.Contains(errStr, "500") || strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") || strings.Contains(errStr, "504") {
		gwErr = NewError(ErrorTypeEndpoint, "server error", err)
		gwErr.StatusCode = statusCode
		return gwErr
	}

	gwErr = NewError(ErrorTypeUnknown, "llm error", err)
	gwErr.StatusCode = statusCode
	return gwErr
}

// GetErrorType extracts the ErrorType from an error.
func GetErrorType(err error) ErrorType {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Type
	}
	return ErrorTypeUnknown
}
