package factcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/util"
)

// ErrNotConfigured is returned when no Fact Check Tools API key is set
var ErrNotConfigured = errors.New("factcheck: no API key configured")

// Client queries the Google Fact Check Tools claim registry
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxClaims  int
	queryChars int
}

type claimsResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		Claimant    string `json:"claimant"`
		ClaimReview []struct {
			URL           string `json:"url"`
			TextualRating string `json:"textualRating"`
			Publisher     struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// NewClient creates a client from configuration
func NewClient(cfg model.FactCheckConfig, proxy util.ProxyConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://factchecktools.googleapis.com/v1alpha1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	maxClaims := cfg.MaxClaims
	if maxClaims <= 0 {
		maxClaims = 5
	}
	queryChars := cfg.QueryChars
	if queryChars <= 0 {
		queryChars = 200
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: util.NewHTTPClient(0, proxy),
		timeout:    timeout,
		maxClaims:  maxClaims,
		queryChars: queryChars,
	}
}

// IsConfigured reports whether an API key is set
func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// Search looks up published fact-checks for a claim. Every review of the
// first maxClaims matching claims is returned.
func (c *Client) Search(ctx context.Context, claim string) ([]model.FactCheckReview, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{
		"query": {truncateRunes(claim, c.queryChars)},
		"key":   {c.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/claims:search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("factcheck search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("factcheck search: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result claimsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("factcheck search: decode response: %w", err)
	}

	var reviews []model.FactCheckReview
	for i, item := range result.Claims {
		if i >= c.maxClaims {
			break
		}
		for _, review := range item.ClaimReview {
			publisher := review.Publisher.Name
			if publisher == "" {
				publisher = review.Publisher.Site
			}
			reviews = append(reviews, model.FactCheckReview{
				Claim:     item.Text,
				Claimant:  item.Claimant,
				Rating:    review.TextualRating,
				Publisher: publisher,
				URL:       review.URL,
			})
		}
	}
	return reviews, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
