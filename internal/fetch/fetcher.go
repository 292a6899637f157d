package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/extract"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/util"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

var (
	// ErrDisallowed is returned when robots.txt forbids fetching a page
	ErrDisallowed = errors.New("fetch: disallowed by robots.txt")
	// ErrTooLarge is returned when a download exceeds its size limit
	ErrTooLarge = errors.New("fetch: response exceeds size limit")
)

// StatusError is returned for a non-2xx upstream response
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

// Fetcher retrieves pages and images for the verification pipelines
type Fetcher struct {
	httpClient      *http.Client
	userAgent       string
	maxBytes        int64
	scrapeTimeout   time.Duration
	downloadTimeout time.Duration
	paragraphs      int
	contentChars    int
	limiter         *worker.Limiter
	robots          *util.RobotsChecker
}

// Options tune a single article fetch
type Options struct {
	// CheckRobots consults robots.txt before fetching
	CheckRobots bool
}

// New creates a fetcher. limiter and robots may be nil.
func New(cfg *model.Config, limiter *worker.Limiter, robots *util.RobotsChecker) *Fetcher {
	client := util.NewHTTPClient(0, util.ProxyConfig{
		HTTPProxy:  cfg.HTTP.HTTPProxy,
		HTTPSProxy: cfg.HTTP.HTTPSProxy,
		NoProxy:    cfg.HTTP.NoProxy,
	})
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return fmt.Errorf("stopped after 5 redirects")
		}
		return nil
	}

	return &Fetcher{
		httpClient:      client,
		userAgent:       cfg.HTTP.UserAgent,
		maxBytes:        cfg.HTTP.MaxBodyBytes,
		scrapeTimeout:   orDefault(cfg.HTTP.ScrapeTimeout, 10*time.Second),
		downloadTimeout: orDefault(cfg.HTTP.DownloadTimeout, 10*time.Second),
		paragraphs:      cfg.Pipeline.Paragraphs,
		contentChars:    cfg.Pipeline.ContentChars,
		limiter:         limiter,
		robots:          robots,
	}
}

// Article fetches a page and extracts its title and main text
func (f *Fetcher) Article(ctx context.Context, rawURL string, opts Options) (model.Article, error) {
	if opts.CheckRobots && f.robots != nil && !f.robots.Allowed(ctx, rawURL) {
		return model.Article{}, ErrDisallowed
	}

	ctx, cancel := context.WithTimeout(ctx, f.scrapeTimeout)
	defer cancel()

	// Pages over the limit are read up to it; the leading text is enough to extract from
	body, finalURL, _, err := f.get(ctx, rawURL, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", f.maxBytes)
	if err != nil {
		return model.Article{}, err
	}

	article := extract.Article(string(body), finalURL, f.paragraphs, f.contentChars)
	article.URL = rawURL
	return article, nil
}

// Download fetches raw bytes. A body longer than maxBytes fails with
// ErrTooLarge; a non-positive maxBytes means no limit.
func (f *Fetcher) Download(ctx context.Context, rawURL string, maxBytes int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.downloadTimeout)
	defer cancel()

	body, _, truncated, err := f.get(ctx, rawURL, "image/*,*/*;q=0.8", maxBytes)
	if err != nil {
		return nil, err
	}
	if truncated {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes)
	}
	return body, nil
}

// get reads at most maxBytes of the response body and reports whether more
// was available.
func (f *Fetcher) get(ctx context.Context, rawURL, accept string, maxBytes int64) ([]byte, string, bool, error) {
	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, "", false, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", false, fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, "", false, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", false, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var reader io.Reader = resp.Body
	if maxBytes > 0 {
		reader = io.LimitReader(resp.Body, maxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", false, fmt.Errorf("read body: %w", err)
	}

	truncated := maxBytes > 0 && int64(len(body)) > maxBytes
	if truncated {
		body = body[:maxBytes]
	}
	return body, resp.Request.URL.String(), truncated, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
