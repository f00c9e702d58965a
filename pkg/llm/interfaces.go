// Package llm provides chat-completion clients for external language models.
package llm

import (
	"context"
)

// Sampling parameters used for every completion request. The pipeline depends
// on deterministic request shape, not deterministic output, so these are fixed
// rather than configurable.
const (
	temperature         = 1.0
	topP                = 1.0
	maxCompletionTokens = 1000
)

// GenerateResponseResult holds a completion's content and token usage.
type GenerateResponseResult struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatClient defines the interface for chat-completion operations.
// Use this interface for dependency injection to enable mocking in tests.
type ChatClient interface {
	// GenerateResponse sends one completion round trip: a system message
	// carrying instructions and schema context, plus the user's question.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string) (*GenerateResponseResult, error)

	// GetModel returns the configured model name.
	GetModel() string
}
