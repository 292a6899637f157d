package pipeline

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/score"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

// VerifyClaims splits text into discrete claims, verifies each against web
// search and published fact-checks, and aggregates the per-claim verdicts.
// Text without verifiable claims yields UNVERIFIED.
func (p *Pipeline) VerifyClaims(ctx context.Context, text string) (model.Verdict, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Verdict{}, ErrEmptyText
	}

	start := time.Now()
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	claims, err := p.extractClaims(ctx, text)
	if err != nil {
		log.Printf("warning: claim extraction failed: %v", err)
	}
	if len(claims) == 0 {
		return p.finish(NameClaims, start, score.Unverified()), nil
	}

	results := make([]model.ClaimVerification, len(claims))
	for i, c := range claims {
		results[i] = claimError(c, nil, ErrSkipped.Error())
	}
	worker.FanOut(ctx, len(claims), p.workers(), func(ctx context.Context, i int) {
		results[i] = p.verifyClaim(ctx, claims[i])
	})

	return p.finish(NameClaims, start, score.AggregateClaims(results)), nil
}

// extractClaims returns the verifiable claims found in text
func (p *Pipeline) extractClaims(ctx context.Context, text string) ([]model.ExtractedClaim, error) {
	var list claimList
	err := p.assess(ctx, llm.Request{
		Prompt:      extractPrompt(text),
		Temperature: verdictTemperature,
	}, &list)
	if err != nil {
		return nil, err
	}

	var claims []model.ExtractedClaim
	for _, c := range list {
		c.Claim = strings.TrimSpace(c.Claim)
		if c.Verifiable && c.Claim != "" {
			claims = append(claims, c)
		}
	}
	return claims, nil
}

func (p *Pipeline) verifyClaim(ctx context.Context, claim model.ExtractedClaim) model.ClaimVerification {
	var items []model.EvidenceItem
	var reviews []model.FactCheckReview
	worker.FanOut(ctx, 2, 2, func(ctx context.Context, i int) {
		if i == 0 {
			items = p.claimSearch(ctx, claim.Query())
		} else {
			reviews = p.factCheck(ctx, claim.Claim)
		}
	})

	var answer claimAnswer
	err := p.assess(ctx, llm.Request{
		Prompt:      claimPrompt(claim, items, reviews, p.promptResults()),
		Temperature: verdictTemperature,
	}, &answer)
	if err != nil {
		return claimError(claim, reviews, err.Error())
	}

	label, ok := score.ParseLabel(answer.Verdict)
	if !ok || label == model.LabelError {
		return claimError(claim, reviews, "unrecognized verdict "+strings.TrimSpace(answer.Verdict))
	}

	return model.ClaimVerification{
		Claim:           claim.Claim,
		Verdict:         label,
		Confidence:      score.Clamp(answer.Confidence.Or(50)),
		Reasoning:       strings.TrimSpace(answer.Reasoning),
		CredibleSources: answer.CredibleSources,
		RedFlags:        answer.RedFlags,
		FactChecks:      reviews,
	}
}

// claimSearch bounds each per-claim search with the shorter claim timeout
func (p *Pipeline) claimSearch(ctx context.Context, query string) []model.EvidenceItem {
	if p.cfg.Search.ClaimTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Search.ClaimTimeout)
		defer cancel()
	}
	return p.search(ctx, query)
}

func (p *Pipeline) factCheck(ctx context.Context, claim string) []model.FactCheckReview {
	if p.factChecks == nil || !p.factChecks.IsConfigured() {
		return nil
	}
	reviews, err := p.factChecks.Search(ctx, claim)
	p.metrics.Upstream("factcheck", err)
	if err != nil {
		log.Printf("warning: fact-check lookup failed: %v", err)
		return nil
	}
	return reviews
}

func claimError(claim model.ExtractedClaim, reviews []model.FactCheckReview, reason string) model.ClaimVerification {
	return model.ClaimVerification{
		Claim:      claim.Claim,
		Verdict:    model.LabelError,
		Confidence: 0,
		Reasoning:  "Analysis failed: " + reason,
		FactChecks: reviews,
	}
}
