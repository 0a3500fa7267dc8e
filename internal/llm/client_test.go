package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func TestProxyClient_Chat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I feel anxious today", req.Message)
		assert.Equal(t, "sad", req.Mood)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{Response: "That sounds hard. Let's take a breath together."})
	}))
	defer srv.Close()

	client := NewProxyClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Chat(context.Background(), ChatRequest{
		Message: "I feel anxious today",
		Mood:    "sad",
	})

	require.NoError(t, err)
	assert.Equal(t, "That sounds hard. Let's take a breath together.", resp.Text)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestProxyClient_Chat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.MaxRetries = 0

	client := NewProxyClient(cfg, NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{Message: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestProxyClient_Chat_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewProxyClient(cfg, NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{Message: "test"})

	assert.ErrorIs(t, err, ErrProxyUnavailable)
}

func TestProxyClient_Chat_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(chatResponse{Response: "ok"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewProxyClient(cfg, NoopObserver{})
	resp, err := client.Chat(context.Background(), ChatRequest{Message: "test"})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestProxyClient_Chat_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewProxyClient(cfg, NoopObserver{})
	_, err := client.Chat(context.Background(), ChatRequest{Message: "test"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestProxyClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewProxyClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	down := NewProxyClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}

func TestProxyClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{Response: "ok"})
	}))
	defer srv.Close()

	var captured ChatCallEvent
	obs := &captureObserver{fn: func(e ChatCallEvent) { captured = e }}

	client := NewProxyClient(testConfig(srv.URL), obs)
	_, err := client.Chat(context.Background(), ChatRequest{Message: "test"})

	require.NoError(t, err)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestProxyClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.MaxRetries = 0

	var captured ChatCallEvent
	obs := &captureObserver{fn: func(e ChatCallEvent) { captured = e }}
	client := NewProxyClient(cfg, obs)

	_, err := client.Chat(context.Background(), ChatRequest{Message: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

type captureObserver struct {
	fn func(ChatCallEvent)
}

func (o *captureObserver) OnCallComplete(e ChatCallEvent) { o.fn(e) }
