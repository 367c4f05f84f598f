package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaRephraseCollectsAlternates(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)

		var req ollamaChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.1:8b", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "Tone: polite")
		assert.Contains(t, req.Messages[1].Content, "send me report asap")

		n := calls.Add(1)
		resp := ollamaChatResponse{Message: ollamaMessage{Role: "assistant", Content: "variant " + string(rune('0'+n))}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "llama3.1:8b")
	resp, err := client.Rephrase(context.Background(), Request{
		Text:        "send me report asap",
		Tone:        "polite",
		Alternates:  3,
		Temperature: 0.4,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Texts, 3)
	assert.Equal(t, "variant 1", resp.Primary())
	assert.EqualValues(t, 3, calls.Load())
}

func TestOllamaRephraseNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "missing")
	_, err := client.Rephrase(context.Background(), Request{Text: "hi", Tone: "polite", Alternates: 1})
	require.ErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "model not found")
}

func TestOllamaRephraseRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "busy", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "llama3.1:8b")
	_, err := client.Rephrase(context.Background(), Request{Text: "hi", Tone: "polite", Alternates: 1})
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestOllamaRephraseTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewOllamaClient(srv.URL, "llama3.1:8b")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Rephrase(ctx, Request{Text: "hi", Tone: "polite", Alternates: 1})
	require.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestOllamaRephraseEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"   "}}`))
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "llama3.1:8b")
	_, err := client.Rephrase(context.Background(), Request{Text: "hi", Tone: "polite", Alternates: 1})
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOllamaRephraseMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":`))
	}))
	defer srv.Close()

	client := NewOllamaClient(srv.URL, "llama3.1:8b")
	_, err := client.Rephrase(context.Background(), Request{Text: "hi", Tone: "polite", Alternates: 1})
	require.ErrorIs(t, err, ErrProvider)
}
