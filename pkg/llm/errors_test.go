package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "401 unauthorized",
			err:        errors.New("error, status code: 401, message: invalid api key"),
			wantType:   ErrorTypeAuth,
			wantStatus: 401,
		},
		{
			name:     "model not found",
			err:      errors.New("the model `gpt-5-nano` does not exist"),
			wantType: ErrorTypeModel,
		},
		{
			name:       "endpoint 404",
			err:        errors.New("error, status code: 404, message: not found"),
			wantType:   ErrorTypeEndpoint,
			wantStatus: 404,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:9999: connect: connection refused"),
			wantType: ErrorTypeEndpoint,
		},
		{
			name:     "deadline exceeded",
			err:      errors.New("context deadline exceeded"),
			wantType: ErrorTypeEndpoint,
		},
		{
			name:       "rate limited",
			err:        errors.New("error, status code: 429, message: rate limit reached"),
			wantType:   ErrorTypeUnknown,
			wantStatus: 429,
		},
		{
			name:       "server error",
			err:        errors.New("error, status code: 503, message: overloaded"),
			wantType:   ErrorTypeEndpoint,
			wantStatus: 503,
		},
		{
			name:     "unrecognized",
			err:      errors.New("something odd"),
			wantType: ErrorTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gwErr := ClassifyError(tt.err)
			assert.Equal(t, tt.wantType, gwErr.Type)
			assert.Equal(t, tt.wantStatus, gwErr.StatusCode)
			assert.ErrorIs(t, gwErr, tt.err, "cause must be preserved for errors.Is")
		})
	}
}

func TestClassifyError_NilPassthrough(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_AlreadyClassified(t *testing.T) {
	original := NewError(ErrorTypeAuth, "authentication failed", errors.New("boom"))
	wrapped := fmt.Errorf("request failed: %w", original)

	assert.Same(t, original, ClassifyError(wrapped))
}

func TestErrorString(t *testing.T) {
	err := NewError(ErrorTypeEndpoint, "server error", errors.New("boom"))
	err.StatusCode = 503

	assert.Equal(t, "endpoint HTTP 503 server error: boom", err.Error())
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeModel, GetErrorType(NewError(ErrorTypeModel, "model not found", nil)))
	assert.Equal(t, ErrorTypeUnknown, GetErrorType(errors.New("plain")))
}
