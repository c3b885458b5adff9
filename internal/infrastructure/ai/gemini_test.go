package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainalink/platform/internal/core/domain"
)

func newGeminiServer(t *testing.T, status int, body string) (*httptest.Server, *generateRequest) {
	t.Helper()
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func newTestClient(url, key string) *GeminiClient {
	return NewGeminiClient(Config{APIKey: key, Model: "test-model", BaseURL: url}, zerolog.Nop())
}

func TestGenerate_ReturnsCandidateText(t *testing.T) {
	srv, got := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello "},{"text":"there"}]},"finishReason":"STOP"}]}`)

	text, err := newTestClient(srv.URL, "key-123").Generate(context.Background(), "Say hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "Say hi", got.Contents[0].Parts[0].Text)
}

func TestGenerate_NoCandidates(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, `{"candidates":[]}`)

	_, err := newTestClient(srv.URL, "key-123").Generate(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrAIEmptyCompletion)
}

func TestGenerate_APIError(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)

	_, err := newTestClient(srv.URL, "key-123").Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerate_WithoutKey(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1", "").Generate(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}
