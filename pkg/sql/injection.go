package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a question.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if SQL injection pattern detected
	Fingerprint string // libinjection fingerprint of the detected pattern
}

// CheckQuestionForInjection uses libinjection to detect SQL injection payloads
// smuggled into the natural-language question before it reaches the model.
// Plain English does not trip the detector; fragments like
// "'; DROP TABLE products--" do.
//
// Returns nil if no injection is detected.
func CheckQuestionForInjection(question string) *InjectionCheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(question)
	if isSQLi {
		return &InjectionCheckResult{
			IsSQLi:      true,
			Fingerprint: string(fingerprint),
		}
	}
	return nil
}
