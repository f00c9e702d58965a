package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFakeOpenAI(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	client, err := NewClient(&Config{
		Endpoint: endpoint,
		Model:    "gpt-4o-mini",
		APIKey:   "sk-test",
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_GenerateResponse(t *testing.T) {
	server := newFakeOpenAI(t, `{
		"choices": [{"message": {"role": "assistant", "content": "yes yes Looks answerable."}}],
		"usage": {"prompt_tokens": 42, "completion_tokens": 7, "total_tokens": 49}
	}`, http.StatusOK)

	client := newTestClient(t, server.URL)
	result, err := client.GenerateResponse(context.Background(), "Show total sales for each product.", "system")
	require.NoError(t, err)

	assert.Equal(t, "yes yes Looks answerable.", result.Content)
	assert.Equal(t, 42, result.PromptTokens)
	assert.Equal(t, 7, result.CompletionTokens)
	assert.Equal(t, 49, result.TotalTokens)
}

func TestClient_GenerateResponse_EmptyCompletion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no choices",
			body: `{"choices": []}`,
		},
		{
			name: "empty content",
			body: `{"choices": [{"message": {"role": "assistant", "content": ""}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newFakeOpenAI(t, tt.body, http.StatusOK)
			client := newTestClient(t, server.URL)

			_, err := client.GenerateResponse(context.Background(), "anything", "system")
			assert.ErrorIs(t, err, ErrEmptyCompletion)
		})
	}
}

func TestClient_GenerateResponse_AuthFailureClassified(t *testing.T) {
	server := newFakeOpenAI(t, `{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`, http.StatusUnauthorized)
	client := newTestClient(t, server.URL)

	_, err := client.GenerateResponse(context.Background(), "anything", "system")
	require.Error(t, err)
	assert.Equal(t, ErrorTypeAuth, GetErrorType(err))
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	client := newTestClient(t, "https://api.openai.com/v1/")
	assert.Equal(t, "https://api.openai.com/v1/", client.GetEndpoint())
	assert.Equal(t, "gpt-4o-mini", client.GetModel())
}
