package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/util"
	"github.com/microcosm-cc/bluemonday"
)

// ErrNotConfigured is returned when no search API key is set
var ErrNotConfigured = errors.New("search: no API key configured")

// KnowledgeGraphSource is the Source of the structured entity result
const KnowledgeGraphSource = "Knowledge Graph"

// Serper is a client for the Serper Google search API
type Serper struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	maxResults   int
	maxImages    int
	timeout      time.Duration
	imageTimeout time.Duration
	country      string
	language     string
	policy       *bluemonday.Policy
}

type serperQuery struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperSearchResponse struct {
	KnowledgeGraph *struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Website     string `json:"website"`
	} `json:"knowledgeGraph"`
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Date    string `json:"date"`
	} `json:"organic"`
}

// NewSerper creates a client from configuration
func NewSerper(cfg model.SearchConfig, proxy util.ProxyConfig) *Serper {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://google.serper.dev"
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	maxImages := cfg.MaxImages
	if maxImages <= 0 {
		maxImages = 20
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	imageTimeout := cfg.ImageTimeout
	if imageTimeout <= 0 {
		imageTimeout = 15 * time.Second
	}

	return &Serper{
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   util.NewHTTPClient(0, proxy),
		maxResults:   maxResults,
		maxImages:    maxImages,
		timeout:      timeout,
		imageTimeout: imageTimeout,
		country:      cfg.Country,
		language:     cfg.Language,
		policy:       bluemonday.StrictPolicy(),
	}
}

// IsConfigured reports whether an API key is set
func (s *Serper) IsConfigured() bool {
	return s != nil && s.apiKey != ""
}

// Search runs a web search. The knowledge-graph entity, when present, comes
// first, followed by at most maxResults organic hits in rank order.
func (s *Serper) Search(ctx context.Context, query string) ([]model.EvidenceItem, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var resp serperSearchResponse
	if err := s.post(ctx, "/search", serperQuery{Q: query, Num: s.maxResults}, &resp); err != nil {
		return nil, err
	}

	var items []model.EvidenceItem
	if kg := resp.KnowledgeGraph; kg != nil && (kg.Title != "" || kg.Description != "") {
		items = append(items, model.EvidenceItem{
			Title:   s.clean(kg.Title),
			Snippet: s.clean(kg.Description),
			Link:    kg.Website,
			Domain:  domainOf(kg.Website),
			Kind:    model.EvidenceKindKnowledgeGraph,
			Source:  KnowledgeGraphSource,
		})
	}

	for i, hit := range resp.Organic {
		if i >= s.maxResults {
			break
		}
		domain := domainOf(hit.Link)
		items = append(items, model.EvidenceItem{
			Title:   s.clean(hit.Title),
			Snippet: s.clean(hit.Snippet),
			Link:    hit.Link,
			Domain:  domain,
			Kind:    model.EvidenceKindOrganic,
			Source:  domain,
			Date:    hit.Date,
		})
	}

	return items, nil
}

// post sends a JSON body to path and decodes the JSON answer into out
func (s *Serper) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("serper %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("serper %s: HTTP %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("serper %s: decode response: %w", path, err)
	}
	return nil
}

// clean strips markup from upstream text
func (s *Serper) clean(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

func domainOf(link string) string {
	if link == "" {
		return ""
	}
	return reputation.NormalizeDomain(link)
}
