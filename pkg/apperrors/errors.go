package apperrors

import "errors"

// Pipeline errors. Handlers map these to HTTP statuses: the first four are
// client input errors (400), the rest are server-side failures (500).
var (
	ErrQueryRequired     = errors.New("Query is required")
	ErrQueryTooLong      = errors.New("Query can only be a maximum of 500 characters")
	ErrDestructiveQuery  = errors.New("Potentially destructive queries are not allowed")
	ErrSuspiciousQuery   = errors.New("Query contains a suspicious pattern and was rejected")
	ErrTranslationFailed = errors.New("failed to translate query")
	ErrExecutionFailed   = errors.New("failed to execute query")
)
