package models

// Verdict is the validator's judgment of an incoming question.
// Produced per request and consumed immediately; never persisted.
type Verdict struct {
	IsValid       bool   `json:"is_valid"`
	IsAligned     bool   `json:"is_aligned"`
	Justification string `json:"justification"`
}

// Accepted reports whether the question passed both checks.
func (v Verdict) Accepted() bool {
	return v.IsValid && v.IsAligned
}

// Translation is the translator's output for an accepted question.
type Translation struct {
	SQLQuery    string `json:"sql_query"`
	Explanation string `json:"explanation"`
}
