package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultOllamaURL = "http://localhost:11434"

// OllamaProvider talks to a local Ollama server through its chat endpoint.
// Vision requests need a multimodal model such as llava or llama3.2-vision.
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"` // raw base64
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResponse struct {
	Model           string        `json:"model"`
	Message         ollamaMessage `json:"message"`
	Done            bool          `json:"done"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(config Config) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	// Local models, vision ones especially, are slow to answer
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	return &OllamaProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: newProviderClient(config),
		config:     config,
	}, nil
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// IsConfigured always reports true; a local server needs no credentials
func (p *OllamaProvider) IsConfigured() bool {
	return true
}

// Complete runs one non-streaming chat turn
func (p *OllamaProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if p.config.Model == "" {
		return nil, fmt.Errorf("ollama model must be specified (e.g., llama3.2-vision, mistral)")
	}

	user := ollamaMessage{Role: "user", Content: req.Prompt}
	for _, img := range req.Images {
		user.Images = append(user.Images, img.Base64())
	}

	chatReq := ollamaChatRequest{
		Model: p.config.Model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt(req)},
			user,
		},
		Options: ollamaOptions{
			Temperature: p.config.temperature(req),
			NumPredict:  p.config.maxTokens(req),
		},
	}
	if req.JSON {
		chatReq.Format = "json"
	}

	var resp ollamaChatResponse
	if err := postJSON(ctx, p.httpClient, p.baseURL+"/api/chat", nil, chatReq, &resp, ollamaErrorMessage); err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	return &Response{
		Text:       strings.TrimSpace(resp.Message.Content),
		Model:      resp.Model,
		TokensUsed: resp.PromptEvalCount + resp.EvalCount,
	}, nil
}

func ollamaErrorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) != nil {
		return ""
	}
	return e.Error
}
