package describe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPrompt(t *testing.T) {
	got := Prompt(Request{Color: "bright cyan", Mass: 425.7})

	if !strings.Contains(got, "bright cyan") {
		t.Errorf("Prompt should mention the color, got %q", got)
	}
	if !strings.Contains(got, "425") {
		t.Errorf("Prompt should mention the truncated mass, got %q", got)
	}
	if strings.Contains(got, "425.7") {
		t.Errorf("Prompt should not contain fractional mass, got %q", got)
	}
}

func TestGeminiDescribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "models/"+DefaultModel) {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected key=test-key, got %q", r.URL.Query().Get("key"))
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // test server
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" \"A plucky blue speck with big dreams.\" "}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))

	text, err := c.Describe(context.Background(), Request{Color: "blue", Mass: 400})
	if err != nil {
		t.Fatalf("Describe() failed: %v", err)
	}

	// Quotes removed, whitespace trimmed
	expected := "A plucky blue speck with big dreams."
	if text != expected {
		t.Errorf("Describe() = %q, expected %q", text, expected)
	}
}

func TestGeminiDescribeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		//nolint:errcheck // test server
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))

	_, err := c.Describe(context.Background(), Request{Color: "red", Mass: 100})
	if err == nil {
		t.Fatal("Describe() should fail on service error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Error should carry the service message, got %v", err)
	}
}

func TestGeminiDescribeEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck // test server
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))

	if _, err := c.Describe(context.Background(), Request{}); err == nil {
		t.Error("Describe() should fail on empty candidate list")
	}
}

func TestGeminiDescribeCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewGeminiClient("test-key", WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Describe(ctx, Request{}); err == nil {
		t.Error("Describe() should fail when context is cancelled")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	if _, ok := FromEnv(); ok {
		t.Error("FromEnv() should report not configured without the key")
	}

	t.Setenv(APIKeyEnv, "some-key")
	client, ok := FromEnv()
	if !ok || client == nil {
		t.Error("FromEnv() should return a client when the key is set")
	}
}
