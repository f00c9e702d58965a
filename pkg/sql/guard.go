// Package sql guards candidate SQL statements before execution.
package sql

import (
	"regexp"
)

// destructivePatterns is a case-insensitive denylist of statement fragments
// that modify data. This is a pattern match, not a parser: it can over-block
// (a match inside a string literal) and under-block (a destructive statement
// phrased differently). The multi-statement check in validator.go closes the
// batch loophole; everything else is an accepted limitation.
var destructivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bDROP\s+TABLE\b`),
	regexp.MustCompile(`(?i)\bDELETE\s+FROM\b`),
	regexp.MustCompile(`(?i)\bALTER\s+TABLE\b`),
	regexp.MustCompile(`(?i)\bUPDATE\s+(?:\S+\s+)?SET\b`),
}

// IsDestructive reports whether the candidate SQL matches the destructive
// statement denylist.
func IsDestructive(sqlQuery string) bool {
	for _, pattern := range destructivePatterns {
		if pattern.MatchString(sqlQuery) {
			return true
		}
	}
	return false
}
