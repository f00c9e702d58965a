// Package logging provides helpers for keeping secrets and noise out of logs.
package logging

import (
	"regexp"
)

const (
	// MaxQueryLogLength is the maximum length of a SQL statement to log.
	MaxQueryLogLength = 200
	// RedactedText is the replacement text for sensitive data.
	RedactedText = "[REDACTED]"
)

var (
	// Matches bearer tokens that model endpoints echo back in error bodies.
	bearerPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9-_.]+`)

	// Matches API key material (sk-... style or key=... query params).
	apiKeyPattern = regexp.MustCompile(`(?i)\b(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}|sk-[A-Za-z0-9-_]{20,}`)
)

// SanitizeQuery truncates a SQL statement for logging. Model-generated SQL is
// bounded but user questions flow into it, so long statements are cut rather
// than logged whole.
func SanitizeQuery(query string) string {
	return TruncateString(query, MaxQueryLogLength)
}

// SanitizeError scrubs credential material from an error before logging.
// Model endpoint errors can echo the Authorization header back.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := bearerPattern.ReplaceAllString(err.Error(), "Bearer "+RedactedText)
	return apiKeyPattern.ReplaceAllString(sanitized, RedactedText)
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
