package relay

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunalearn/luna-api/internal/generation"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(slog.Default(), server.URL)
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(nil, "https://relay.example.com")
	assert.Error(t, err)

	_, err = NewClient(slog.Default(), "")
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}

func TestGenerateSuccess(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "explain gravity", req.Prompt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"[{\"text\":\"Gravity pulls.\"}]"}`))
	})

	text, err := client.Generate(context.Background(), "explain gravity")
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"Gravity pulls."}]`, text)
}

func TestGenerateRelayError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
	})

	_, err := client.Generate(context.Background(), "explain gravity")
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrTransport))
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestGenerateEmptyText(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":""}`))
	})

	_, err := client.Generate(context.Background(), "explain gravity")
	assert.True(t, errors.Is(err, generation.ErrEmptyResponse))
}

func TestGenerateUndecodableBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	})

	_, err := client.Generate(context.Background(), "explain gravity")
	assert.True(t, errors.Is(err, generation.ErrTransport))
}

func TestGenerateEmptyPrompt(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("relay should not be called for an empty prompt")
	})

	_, err := client.Generate(context.Background(), "")
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}
