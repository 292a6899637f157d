package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOllamaProvider_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("Expected path /api/chat, got %s", r.URL.Path)
		}

		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Format != "json" {
			t.Errorf("Expected json format, got %q", req.Format)
		}
		if req.Stream {
			t.Error("Expected non-streaming request")
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("Expected system and user messages, got %+v", req.Messages)
		}
		if imgs := req.Messages[1].Images; len(imgs) != 1 || imgs[0] != "AQI=" {
			t.Errorf("Expected one raw base64 image, got %v", imgs)
		}

		_ = json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:           "llava",
			Message:         ollamaMessage{Role: "assistant", Content: ` {"ok": true} `},
			Done:            true,
			PromptEvalCount: 10,
			EvalCount:       5,
		})
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llava", Timeout: 5 * time.Second})

	resp, err := provider.Complete(context.Background(), Request{
		Prompt: "Look",
		JSON:   true,
		Images: []Image{{MIMEType: "image/png", Data: []byte{1, 2}}},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Text != `{"ok": true}` {
		t.Errorf("Expected trimmed response, got %q", resp.Text)
	}
	if resp.TokensUsed != 15 {
		t.Errorf("Expected 15 tokens, got %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing", Timeout: 5 * time.Second})

	_, err := provider.Complete(context.Background(), Request{Prompt: "hi"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "model not found" {
		t.Errorf("Unexpected API error %+v", apiErr)
	}
}

func TestOllamaProvider_Complete_NoModel(t *testing.T) {
	provider, _ := NewOllamaProvider(Config{})

	if _, err := provider.Complete(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Error("Expected error when no model is configured")
	}
	if !provider.IsConfigured() {
		t.Error("Ollama needs no credentials")
	}
}
