package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// ErrNotConfigured is returned when no language model is configured
var ErrNotConfigured = errors.New("llm: no provider configured")

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one prompt (optionally with images) and returns the raw text answer
	Complete(ctx context.Context, req Request) (*Response, error)

	// IsConfigured reports whether credentials are present. It makes no network call.
	IsConfigured() bool
}

// Image is an inline image attached to a request
type Image struct {
	MIMEType string
	Data     []byte
}

// DataURI returns the image as a base64 data URI
func (i Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + i.Base64()
}

// Base64 returns the standard base64 encoding of the image bytes
func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// Request is a single completion request
type Request struct {
	// System is the system instruction; providers fall back to a generic one
	System string

	// Prompt is the user message
	Prompt string

	// Images switches the request to vision mode
	Images []Image

	// MaxTokens limits the response length (0 = provider config)
	MaxTokens int

	// Temperature (0 = provider config)
	Temperature float32

	// JSON asks the provider for a JSON object response where supported
	JSON bool
}

// Response is the raw completion output
type Response struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "gemini", "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	Timeout     time.Duration
	MaxTokens   int
	Temperature float32

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "",
		Timeout:     30 * time.Second,
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// ConfigFromModel converts the application config into a provider config
func ConfigFromModel(llmCfg model.LLMConfig, httpCfg model.HTTPConfig) Config {
	return Config{
		Provider:    llmCfg.Provider,
		Model:       llmCfg.Model,
		APIKey:      llmCfg.APIKey,
		BaseURL:     llmCfg.BaseURL,
		Timeout:     llmCfg.Timeout,
		MaxTokens:   llmCfg.MaxTokens,
		Temperature: llmCfg.Temperature,
		HTTPProxy:   httpCfg.HTTPProxy,
		HTTPSProxy:  httpCfg.HTTPSProxy,
		NoProxy:     httpCfg.NoProxy,
	}
}

const defaultSystemPrompt = "You are a careful fact-checking assistant. Respond with a single valid JSON value and nothing else: no markdown, no code fences, no commentary."

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.Timeout
}

func (c Config) maxTokens(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return 2048
}

func (c Config) temperature(req Request) float32 {
	if req.Temperature > 0 {
		return req.Temperature
	}
	return c.Temperature
}

func systemPrompt(req Request) string {
	if req.System != "" {
		return req.System
	}
	return defaultSystemPrompt
}
