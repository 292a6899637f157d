package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete fakecheck configuration
type Config struct {
	Server       ServerConfig     `yaml:"server" mapstructure:"server"`
	HTTP         HTTPConfig       `yaml:"http" mapstructure:"http"`
	LLM          LLMConfig        `yaml:"llm" mapstructure:"llm"`
	Search       SearchConfig     `yaml:"search" mapstructure:"search"`
	FactCheck    FactCheckConfig  `yaml:"factcheck" mapstructure:"factcheck"`
	Upload       UploadConfig     `yaml:"upload" mapstructure:"upload"`
	Pipeline     PipelineConfig   `yaml:"pipeline" mapstructure:"pipeline"`
	RateLimiting RateLimitConfig  `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Reputation   ReputationConfig `yaml:"reputation" mapstructure:"reputation"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr           string        `yaml:"addr" mapstructure:"addr"`
	AllowOrigins   []string      `yaml:"allow_origins" mapstructure:"allow_origins"` // "*" allows all
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// HTTPConfig configures outbound page fetching
type HTTPConfig struct {
	UserAgent       string        `yaml:"user_agent" mapstructure:"user_agent"`
	ScrapeTimeout   time.Duration `yaml:"scrape_timeout" mapstructure:"scrape_timeout"`
	DownloadTimeout time.Duration `yaml:"download_timeout" mapstructure:"download_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots   bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy       string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy      string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy         string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// LLMConfig configures the AI assessor
type LLMConfig struct {
	Provider    string        `yaml:"provider" mapstructure:"provider"` // gemini, openai, anthropic, ollama, "" (disabled)
	Model       string        `yaml:"model" mapstructure:"model"`
	APIKey      string        `yaml:"-" mapstructure:"-"` // Environment only
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float32       `yaml:"temperature" mapstructure:"temperature"`
}

// SearchConfig configures web and reverse image search
type SearchConfig struct {
	APIKey       string        `yaml:"-" mapstructure:"-"` // SERPER_API_KEY
	BaseURL      string        `yaml:"base_url" mapstructure:"base_url"`
	MaxResults   int           `yaml:"max_results" mapstructure:"max_results"`
	MaxImages    int           `yaml:"max_images" mapstructure:"max_images"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	ClaimTimeout time.Duration `yaml:"claim_timeout" mapstructure:"claim_timeout"`
	ImageTimeout time.Duration `yaml:"image_timeout" mapstructure:"image_timeout"`
	Country      string        `yaml:"country" mapstructure:"country"`
	Language     string        `yaml:"language" mapstructure:"language"`
}

// FactCheckConfig configures the fact-checker claim registry
type FactCheckConfig struct {
	APIKey     string        `yaml:"-" mapstructure:"-"` // GOOGLE_FACTCHECK_API_KEY
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxClaims  int           `yaml:"max_claims" mapstructure:"max_claims"`
	QueryChars int           `yaml:"query_chars" mapstructure:"query_chars"`
}

// UploadConfig configures temporary image storage
type UploadConfig struct {
	Dir               string   `yaml:"dir" mapstructure:"dir"`
	AllowedExtensions []string `yaml:"allowed_extensions" mapstructure:"allowed_extensions"`
}

// PipelineConfig tunes evidence gathering
type PipelineConfig struct {
	MaxScrapes     int           `yaml:"max_scrapes" mapstructure:"max_scrapes"`
	Paragraphs     int           `yaml:"paragraphs" mapstructure:"paragraphs"`
	ContentChars   int           `yaml:"content_chars" mapstructure:"content_chars"`
	PromptResults  int           `yaml:"prompt_results" mapstructure:"prompt_results"`
	Workers        int           `yaml:"workers" mapstructure:"workers"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

// RateLimitConfig configures inbound and outbound rate limits
type RateLimitConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"` // Outbound, per domain
	BurstSize         int           `yaml:"burst_size" mapstructure:"burst_size"`
	ClientRPS         float64       `yaml:"client_rps" mapstructure:"client_rps"` // Inbound, per client IP; 0 disables
	ClientBurst       int           `yaml:"client_burst" mapstructure:"client_burst"`
	ClientIdleTTL     time.Duration `yaml:"client_idle_ttl" mapstructure:"client_idle_ttl"`
	DomainRates       []DomainRate  `yaml:"domain_rates" mapstructure:"domain_rates"`
}

// DomainRate overrides the outbound rate for one domain. Kept as a list
// since viper splits map keys on dots.
type DomainRate struct {
	Domain            string  `yaml:"domain" mapstructure:"domain"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// ReputationEntry is one row of the static reputation table
type ReputationEntry struct {
	Domain string `yaml:"domain" mapstructure:"domain"`
	Score  int    `yaml:"score" mapstructure:"score"`
}

// ReputationConfig holds the static trust lists
type ReputationConfig struct {
	Credible             []ReputationEntry `yaml:"credible" mapstructure:"credible"`
	Unreliable           []ReputationEntry `yaml:"unreliable" mapstructure:"unreliable"`
	ImageCredibleDomains []string          `yaml:"image_credible_domains" mapstructure:"image_credible_domains"`
	UnreliableKeywords   []string          `yaml:"unreliable_keywords" mapstructure:"unreliable_keywords"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":5000",
			AllowOrigins:   []string{"*"},
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   120 * time.Second,
			MaxUploadBytes: 16 << 20,
		},
		HTTP: HTTPConfig{
			UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			ScrapeTimeout:   10 * time.Second,
			DownloadTimeout: 10 * time.Second,
			MaxBodyBytes:    5 << 20,
			RespectRobots:   true,
		},
		LLM: LLMConfig{
			Provider:    "gemini",
			Model:       "gemini-flash-latest",
			Timeout:     30 * time.Second,
			MaxTokens:   2048,
			Temperature: 0.2,
		},
		Search: SearchConfig{
			BaseURL:      "https://google.serper.dev",
			MaxResults:   10,
			MaxImages:    20,
			Timeout:      10 * time.Second,
			ClaimTimeout: 5 * time.Second,
			ImageTimeout: 15 * time.Second,
			Country:      "us",
			Language:     "en",
		},
		FactCheck: FactCheckConfig{
			BaseURL:    "https://factchecktools.googleapis.com/v1alpha1",
			Timeout:    5 * time.Second,
			MaxClaims:  5,
			QueryChars: 200,
		},
		Upload: UploadConfig{
			Dir:               filepath.Join(os.TempDir(), "fakecheck_uploads"),
			AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "bmp", "webp"},
		},
		Pipeline: PipelineConfig{
			MaxScrapes:     3,
			Paragraphs:     10,
			ContentChars:   2000,
			PromptResults:  5,
			Workers:        4,
			RequestTimeout: 90 * time.Second,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         4,
			ClientRPS:         2.0,
			ClientBurst:       10,
			ClientIdleTTL:     10 * time.Minute,
			DomainRates: []DomainRate{
				{Domain: "en.wikipedia.org", RequestsPerSecond: 1.0},
			},
		},
		Reputation: ReputationConfig{
			Credible:             DefaultCredibleSources(),
			Unreliable:           DefaultUnreliableSources(),
			ImageCredibleDomains: DefaultImageCredibleDomains(),
			UnreliableKeywords:   DefaultUnreliableKeywords(),
		},
	}
}

// DefaultCredibleSources returns a copy of the built-in credible list, in lookup order
func DefaultCredibleSources() []ReputationEntry {
	return []ReputationEntry{
		{Domain: "reuters.com", Score: 95},
		{Domain: "apnews.com", Score: 95},
		{Domain: "bbc.com", Score: 93},
		{Domain: "cnn.com", Score: 88},
		{Domain: "nytimes.com", Score: 90},
		{Domain: "theguardian.com", Score: 89},
		{Domain: "washingtonpost.com", Score: 88},
		{Domain: "npr.org", Score: 92},
		{Domain: "pbs.org", Score: 92},
		{Domain: "forbes.com", Score: 85},
		{Domain: "bloomberg.com", Score: 90},
		{Domain: "wsj.com", Score: 89},
		{Domain: "nature.com", Score: 98},
		{Domain: "science.org", Score: 98},
		{Domain: "who.int", Score: 97},
		{Domain: "cdc.gov", Score: 97},
		{Domain: "wikipedia.org", Score: 80},
	}
}

// DefaultUnreliableSources returns a copy of the built-in unreliable list, in lookup order
func DefaultUnreliableSources() []ReputationEntry {
	return []ReputationEntry{
		{Domain: "naturalnews.com", Score: 10},
		{Domain: "infowars.com", Score: 5},
		{Domain: "beforeitsnews.com", Score: 15},
		{Domain: "worldnewsdailyreport.com", Score: 5},
		{Domain: "nationalreport.net", Score: 10},
	}
}

// DefaultImageCredibleDomains returns the source markers counted as credible image matches
func DefaultImageCredibleDomains() []string {
	return []string{
		"reuters", "bbc", "apnews", "cnn", "nytimes", "theguardian",
		"washingtonpost", "aljazeera", "npr", "politifact", "snopes", "factcheck.org",
	}
}

// DefaultUnreliableKeywords returns the markers of suspicious image match sources
func DefaultUnreliableKeywords() []string {
	return []string{
		"fakenews", "clickbait", "viral", "shocking", "unbelievable",
		"youwonotbelieve", "breaking911",
	}
}
