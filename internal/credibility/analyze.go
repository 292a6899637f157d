package credibility

import (
	"context"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

// Score bands used when summarizing a set of sources
const (
	CredibleThreshold   = 80
	UnreliableThreshold = 40
)

// Analyze resolves every distinct domain linked from items and summarizes
// the hits. Each domain is resolved once per call, with up to workers
// resolutions at a time, but the average and counts weigh every linked hit,
// so three Reuters results count as three credible sources. Domains lists
// each resolved domain once. With no resolvable domain the average is the
// neutral 50.
func (r *Resolver) Analyze(ctx context.Context, items []model.EvidenceItem, workers int) model.SourceAnalysis {
	var links, hits []string
	index := make(map[string]int)
	for _, item := range items {
		if item.Link == "" {
			continue
		}
		domain := reputation.NormalizeDomain(item.Link)
		if domain == "" {
			continue
		}
		hits = append(hits, domain)
		if _, ok := index[domain]; !ok {
			index[domain] = len(links)
			links = append(links, item.Link)
		}
	}

	scores := make([]model.DomainScore, len(links))
	worker.FanOut(ctx, len(links), workers, func(ctx context.Context, i int) {
		scores[i] = r.Resolve(ctx, links[i])
	})

	perHit := make([]model.DomainScore, 0, len(hits))
	for _, domain := range hits {
		perHit = append(perHit, scores[index[domain]])
	}

	analysis := Summarize(perHit)
	analysis.Domains = []model.DomainScore{}
	for _, s := range scores {
		if s.Domain != "" {
			analysis.Domains = append(analysis.Domains, s)
		}
	}
	return analysis
}

// Summarize computes the aggregate view of already-resolved scores, one per
// source. Unresolved entries (no domain) are ignored.
func Summarize(scores []model.DomainScore) model.SourceAnalysis {
	analysis := model.SourceAnalysis{
		AverageCredibility: 50,
		Domains:            []model.DomainScore{},
	}

	var total int
	for _, s := range scores {
		if s.Domain == "" {
			continue
		}
		analysis.Domains = append(analysis.Domains, s)
		total += s.Score
		if s.Score >= CredibleThreshold {
			analysis.CredibleCount++
		}
		if s.Score < UnreliableThreshold {
			analysis.UnreliableCount++
		}
		if s.AssessedBy == model.AssessedByAI {
			analysis.AIAssessedCount++
		}
	}
	if n := len(analysis.Domains); n > 0 {
		analysis.AverageCredibility = float64(total) / float64(n)
	}
	return analysis
}
