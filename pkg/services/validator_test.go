package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askdb-io/askdb/pkg/llm"
)

func TestQueryValidator_Accepted(t *testing.T) {
	mock := llm.NewMockChatClient()
	mock.GenerateResponseFunc = func(ctx context.Context, prompt, systemMessage string) (*llm.GenerateResponseResult, error) {
		return &llm.GenerateResponseResult{
			Content: "yes yes The question asks for per-product revenue which the schema provides.",
		}, nil
	}

	validator := NewQueryValidator(mock, zap.NewNop())
	verdict, err := validator.Validate(context.Background(), "Show total sales for each product.")
	require.NoError(t, err)

	assert.True(t, verdict.IsValid)
	assert.True(t, verdict.IsAligned)
	assert.Equal(t, "The question asks for per-product revenue which the schema provides.", verdict.Justification)
	assert.True(t, verdict.Accepted())
	assert.Equal(t, 1, mock.GenerateResponseCalls)
}

func TestQueryValidator_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		isValid   bool
		isAligned bool
	}{
		{
			name:      "invalid question",
			reply:     "no no The question asks to modify data.",
			isValid:   false,
			isAligned: false,
		},
		{
			name:      "sensible but misaligned",
			reply:     "yes no The question cannot be answered from the sales schema.",
			isValid:   true,
			isAligned: false,
		},
		{
			name:      "tokens with punctuation",
			reply:     "Yes, no. Weather data is not in the schema.",
			isValid:   true,
			isAligned: false,
		},
		{
			name:      "unexpected token counts as no",
			reply:     "maybe yes Hard to say.",
			isValid:   false,
			isAligned: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockChatClient()
			mock.GenerateResponseFunc = func(ctx context.Context, prompt, systemMessage string) (*llm.GenerateResponseResult, error) {
				return &llm.GenerateResponseResult{Content: tt.reply}, nil
			}

			validator := NewQueryValidator(mock, zap.NewNop())
			verdict, err := validator.Validate(context.Background(), "anything")
			require.NoError(t, err)

			assert.Equal(t, tt.isValid, verdict.IsValid)
			assert.Equal(t, tt.isAligned, verdict.IsAligned)
			assert.False(t, verdict.Accepted())
		})
	}
}

func TestQueryValidator_FailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{
			name: "empty completion sentinel",
			err:  llm.ErrEmptyCompletion,
		},
		{
			name:  "single token reply",
			reply: "yes",
		},
		{
			name:  "blank reply",
			reply: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockChatClient()
			mock.GenerateResponseFunc = func(ctx context.Context, prompt, systemMessage string) (*llm.GenerateResponseResult, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return &llm.GenerateResponseResult{Content: tt.reply}, nil
			}

			validator := NewQueryValidator(mock, zap.NewNop())
			verdict, err := validator.Validate(context.Background(), "anything")
			require.NoError(t, err)

			assert.False(t, verdict.IsValid)
			assert.False(t, verdict.IsAligned)
			assert.Equal(t, "Failed to validate query.", verdict.Justification)
		})
	}
}

func TestQueryValidator_GatewayErrorPropagates(t *testing.T) {
	gatewayErr := llm.NewError(llm.ErrorTypeEndpoint, "connection failed", errors.New("connection refused"))
	mock := llm.NewMockChatClient()
	mock.GenerateResponseFunc = func(ctx context.Context, prompt, systemMessage string) (*llm.GenerateResponseResult, error) {
		return nil, gatewayErr
	}

	validator := NewQueryValidator(mock, zap.NewNop())
	verdict, err := validator.Validate(context.Background(), "anything")
	require.Error(t, err)
	assert.Nil(t, verdict)
	assert.ErrorIs(t, err, gatewayErr)
}
