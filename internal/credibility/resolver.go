package credibility

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/metrics"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
)

// FallbackReasoning is reported when a domain could not be rated
const FallbackReasoning = "could not assess"

const rubricTemperature = 0.1

const rubricPrompt = `You are a media credibility expert. Rate this news source: %s

Analyze based on:
1. REPUTATION: Is this a known, established news organization?
2. JOURNALISTIC STANDARDS: Do they follow ethical journalism practices?
3. FACT-CHECKING: Do they have editorial oversight and corrections policy?
4. BIAS: Any extreme political bias or agenda?
5. RELIABILITY: Track record of accuracy vs misinformation?

Examples for reference:
- Reuters, BBC, AP News = 90-95 (highly credible, international standards)
- CNN, The Hindu, AajTak = 85-90 (credible mainstream with editorial standards)
- Local/regional news = 70-80 (credible but less rigorous)
- Blogs, opinion sites = 40-60 (depends on author)
- Conspiracy sites, fake news = 5-20 (unreliable)

Return ONLY a JSON object:
{
    "credibility_score": 0-100,
    "category": "credible" | "moderate" | "unreliable" | "unknown",
    "reasoning": "1-2 sentence explanation of the rating",
    "red_flags": ["list any concerns"],
    "strengths": ["list any positive factors"]
}`

var errNoScore = errors.New("domain assessment has no credibility_score")

// domainAssessment is the JSON answer to the rubric prompt
type domainAssessment struct {
	CredibilityScore llm.Number     `json:"credibility_score"`
	Category         string         `json:"category"`
	Reasoning        string         `json:"reasoning"`
	RedFlags         llm.StringList `json:"red_flags"`
	Strengths        llm.StringList `json:"strengths"`
}

// Resolver answers "how trustworthy is this domain": static table first,
// AI rubric second, neutral score when both are unavailable. It never fails.
type Resolver struct {
	table    *reputation.Table
	assessor llm.Assessor
	metrics  metrics.Recorder
}

// NewResolver creates a resolver. assessor may be nil, in which case unknown
// domains get the neutral score.
func NewResolver(table *reputation.Table, assessor llm.Assessor, rec metrics.Recorder) *Resolver {
	if table == nil {
		table = reputation.NewDefaultTable()
	}
	if rec == nil {
		rec = metrics.Noop()
	}
	return &Resolver{table: table, assessor: assessor, metrics: rec}
}

// Resolve scores the domain of rawURL (a URL or bare host)
func (r *Resolver) Resolve(ctx context.Context, rawURL string) model.DomainScore {
	domain := reputation.NormalizeDomain(rawURL)

	if entry, category, ok := r.table.Lookup(domain); ok {
		reasoning := "Known credible source"
		if category == model.CategoryUnreliable {
			reasoning = "Known unreliable source"
		}
		return model.DomainScore{
			Domain:     domain,
			Score:      entry.Score,
			Category:   category,
			AssessedBy: model.AssessedByStaticTable,
			Reasoning:  reasoning,
		}
	}

	score, err := r.assess(ctx, domain)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			log.Printf("credibility: could not assess %s: %v", domain, err)
		}
		return Neutral(domain)
	}
	return score
}

// Neutral is the fail-soft score for a domain nothing is known about
func Neutral(domain string) model.DomainScore {
	return model.DomainScore{
		Domain:     domain,
		Score:      50,
		Category:   model.CategoryUnknown,
		AssessedBy: model.AssessedByStaticTable,
		Reasoning:  FallbackReasoning,
	}
}

func (r *Resolver) assess(ctx context.Context, domain string) (model.DomainScore, error) {
	if r.assessor == nil || domain == "" {
		return model.DomainScore{}, llm.ErrNotConfigured
	}

	var out domainAssessment
	err := r.assessor.Assess(ctx, llm.Request{
		Prompt:      fmt.Sprintf(rubricPrompt, domain),
		Temperature: rubricTemperature,
	}, &out)
	if !errors.Is(err, llm.ErrNotConfigured) {
		r.metrics.Upstream("llm", err)
	}
	if err != nil {
		return model.DomainScore{}, err
	}
	if !out.CredibilityScore.Set {
		return model.DomainScore{}, errNoScore
	}

	score := int(math.Round(math.Max(0, math.Min(100, out.CredibilityScore.Value))))

	return model.DomainScore{
		Domain:     domain,
		Score:      score,
		Category:   model.ParseCategory(strings.ToLower(strings.TrimSpace(out.Category))),
		AssessedBy: model.AssessedByAI,
		Reasoning:  strings.TrimSpace(out.Reasoning),
		RedFlags:   out.RedFlags,
		Strengths:  out.Strengths,
	}, nil
}
