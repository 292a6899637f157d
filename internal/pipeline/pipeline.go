package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/credibility"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/factcheck"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/fetch"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/metrics"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/search"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/util"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

// Input validation errors
var (
	ErrEmptyText  = errors.New("text is required")
	ErrInvalidURL = errors.New("url must start with http:// or https://")
	ErrNotImage   = errors.New("file is not a supported image")
)

// ErrSkipped marks an analysis that never ran because the request ended first
var ErrSkipped = errors.New("analysis skipped: request cancelled or timed out")

// Pipeline names used in metrics
const (
	NameText   = "text"
	NameURL    = "url"
	NameImage  = "image"
	NameClaims = "claims"
)

// Searcher finds web evidence for a query
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.EvidenceItem, error)
	IsConfigured() bool
}

// ImageSearcher finds pages carrying an image
type ImageSearcher interface {
	ReverseImage(ctx context.Context, mimeType string, data []byte) (*search.ImageResults, error)
	IsConfigured() bool
}

// FactChecker looks up published fact-checks for a claim
type FactChecker interface {
	Search(ctx context.Context, claim string) ([]model.FactCheckReview, error)
	IsConfigured() bool
}

// ArticleFetcher retrieves the main text of a page
type ArticleFetcher interface {
	Article(ctx context.Context, rawURL string, opts fetch.Options) (model.Article, error)
}

// Deps are the collaborators of a Pipeline. Config, Assessor, Searcher and
// Fetcher are required; the rest default to disabled or built-in values.
type Deps struct {
	Config       *model.Config
	Assessor     llm.Assessor
	Searcher     Searcher
	ImageSearch  ImageSearcher
	FactChecks   FactChecker
	Fetcher      ArticleFetcher
	Table        *reputation.Table
	ImageSources *reputation.ImageSources
	Resolver     *credibility.Resolver
	Metrics      metrics.Recorder
	ProviderName string
}

// Pipeline runs the text, URL, image and multi-claim verifications
type Pipeline struct {
	cfg          *model.Config
	assessor     llm.Assessor
	searcher     Searcher
	imageSearch  ImageSearcher
	factChecks   FactChecker
	fetcher      ArticleFetcher
	table        *reputation.Table
	imageSources *reputation.ImageSources
	resolver     *credibility.Resolver
	metrics      metrics.Recorder
	provider     string
	now          func() time.Time
}

// New creates a pipeline from explicit collaborators
func New(d Deps) *Pipeline {
	cfg := d.Config
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	rec := d.Metrics
	if rec == nil {
		rec = metrics.Noop()
	}
	table := d.Table
	if table == nil {
		table = reputation.NewTableFromConfig(cfg.Reputation)
	}
	sources := d.ImageSources
	if sources == nil {
		sources = reputation.NewImageSources(cfg.Reputation.ImageCredibleDomains, cfg.Reputation.UnreliableKeywords)
	}
	resolver := d.Resolver
	if resolver == nil {
		resolver = credibility.NewResolver(table, d.Assessor, rec)
	}

	return &Pipeline{
		cfg:          cfg,
		assessor:     d.Assessor,
		searcher:     d.Searcher,
		imageSearch:  d.ImageSearch,
		factChecks:   d.FactChecks,
		fetcher:      d.Fetcher,
		table:        table,
		imageSources: sources,
		resolver:     resolver,
		metrics:      rec,
		provider:     d.ProviderName,
		now:          time.Now,
	}
}

// NewFromConfig wires the production collaborators described by cfg. A
// missing or unknown LLM provider leaves AI assessment disabled rather than
// failing, so the service can still start and report its state.
func NewFromConfig(cfg *model.Config, rec metrics.Recorder) *Pipeline {
	proxy := util.ProxyConfig{
		HTTPProxy:  cfg.HTTP.HTTPProxy,
		HTTPSProxy: cfg.HTTP.HTTPSProxy,
		NoProxy:    cfg.HTTP.NoProxy,
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
		if err != nil {
			log.Printf("warning: LLM provider %q unavailable: %v", cfg.LLM.Provider, err)
		} else {
			provider = p
		}
	}

	serper := search.NewSerper(cfg.Search, proxy)
	limiter := worker.NewDomainLimiter(cfg.RateLimiting)
	var robots *util.RobotsChecker
	if cfg.HTTP.RespectRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, util.NewHTTPClient(5*time.Second, proxy))
	}

	return New(Deps{
		Config:       cfg,
		Assessor:     llm.NewAssessor(provider),
		Searcher:     serper,
		ImageSearch:  serper,
		FactChecks:   factcheck.NewClient(cfg.FactCheck, proxy),
		Fetcher:      fetch.New(cfg, limiter, robots),
		Metrics:      rec,
		ProviderName: cfg.LLM.Provider,
	})
}

// Status reports which external collaborators are configured
type Status struct {
	LLMProvider         string `json:"llm_provider"`
	LLMConfigured       bool   `json:"llm_configured"`
	SearchConfigured    bool   `json:"search_configured"`
	FactCheckConfigured bool   `json:"factcheck_configured"`
}

// Status reports configuration state without making network calls
func (p *Pipeline) Status() Status {
	s := Status{LLMProvider: p.provider}
	if a, ok := p.assessor.(interface{ Configured() bool }); ok {
		s.LLMConfigured = a.Configured()
	} else {
		s.LLMConfigured = p.assessor != nil
	}
	s.SearchConfigured = p.searcher != nil && p.searcher.IsConfigured()
	s.FactCheckConfigured = p.factChecks != nil && p.factChecks.IsConfigured()
	return s
}

// Config returns the pipeline's configuration
func (p *Pipeline) Config() *model.Config {
	return p.cfg
}

// withTimeout bounds a whole verification
func (p *Pipeline) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.Pipeline.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.Pipeline.RequestTimeout)
}

// finish stamps a verdict and records it
func (p *Pipeline) finish(name string, start time.Time, v model.Verdict) model.Verdict {
	v.Timestamp = p.now().UTC().Format(time.RFC3339)
	p.metrics.Verification(name, v.Verdict, time.Since(start))
	return v
}

// search runs a web search; failures degrade to no evidence
func (p *Pipeline) search(ctx context.Context, query string) []model.EvidenceItem {
	if p.searcher == nil || !p.searcher.IsConfigured() {
		return nil
	}
	items, err := p.searcher.Search(ctx, query)
	p.metrics.Upstream("search", err)
	if err != nil {
		log.Printf("warning: search for %q failed: %v", truncate(query, 80), err)
		return nil
	}
	return items
}

// assess runs one structured AI judgment and records its outcome
func (p *Pipeline) assess(ctx context.Context, req llm.Request, out any) error {
	if p.assessor == nil {
		return llm.ErrNotConfigured
	}
	err := p.assessor.Assess(ctx, req, out)
	if !errors.Is(err, llm.ErrNotConfigured) {
		p.metrics.Upstream("llm", err)
	}
	return err
}

func (p *Pipeline) workers() int {
	if p.cfg.Pipeline.Workers <= 0 {
		return 4
	}
	return p.cfg.Pipeline.Workers
}

func analysisFailed(err error) string {
	var parseErr *llm.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Analysis failed: could not parse AI response (%v)", parseErr.Err)
	}
	return "Analysis failed: " + err.Error()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
