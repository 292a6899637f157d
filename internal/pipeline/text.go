package pipeline

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/credibility"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/fetch"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/score"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

const verdictTemperature = 0.1

// VerifyText checks a free-text claim: search, read the credible hits, rate
// every source, then ask the assessor for a verdict. Only a failed or
// unparseable assessment yields an ERROR verdict; every other failure
// degrades to less evidence.
func (p *Pipeline) VerifyText(ctx context.Context, text string) (model.Verdict, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Verdict{}, ErrEmptyText
	}

	start := time.Now()
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	items := p.search(ctx, text)

	var articles []model.Article
	analysis := credibility.Summarize(nil)
	worker.FanOut(ctx, 2, 2, func(ctx context.Context, i int) {
		if i == 0 {
			articles = p.scrapeCredible(ctx, items)
		} else {
			analysis = p.resolver.Analyze(ctx, items, p.workers())
		}
	})

	var answer verdictAnswer
	err := p.assess(ctx, llm.Request{
		Prompt:      textPrompt(text, items, articles, analysis, p.promptResults()),
		Temperature: verdictTemperature,
		MaxTokens:   2048,
	}, &answer)
	if err != nil {
		log.Printf("warning: text assessment failed: %v", err)
		return p.finish(NameText, start, score.Error(analysisFailed(err))), nil
	}

	v, err := score.FromAssessment(answer.assessment())
	if err != nil {
		log.Printf("warning: text assessment rejected: %v", err)
		return p.finish(NameText, start, score.Error(analysisFailed(err))), nil
	}

	v.SourceAnalysis = &analysis
	v.SearchResults = model.IntPtr(len(items))
	v.ArticlesRead = model.IntPtr(len(articles))
	return p.finish(NameText, start, v), nil
}

// scrapeCredible reads the first few hits hosted on credible domains.
// Failed fetches are dropped; the rest keep search rank order.
func (p *Pipeline) scrapeCredible(ctx context.Context, items []model.EvidenceItem) []model.Article {
	if p.fetcher == nil {
		return nil
	}

	var links []string
	for _, item := range items {
		if len(links) >= p.maxScrapes() {
			break
		}
		if item.Link != "" && p.table.IsCredible(reputation.NormalizeDomain(item.Link)) {
			links = append(links, item.Link)
		}
	}

	fetched := make([]model.Article, len(links))
	worker.FanOut(ctx, len(links), p.workers(), func(ctx context.Context, i int) {
		article, err := p.fetcher.Article(ctx, links[i], fetch.Options{CheckRobots: p.cfg.HTTP.RespectRobots})
		if !errors.Is(err, fetch.ErrDisallowed) {
			p.metrics.Upstream("scrape", err)
		}
		if err != nil {
			log.Printf("warning: scrape %s: %v", links[i], err)
			return
		}
		fetched[i] = article
	})

	var articles []model.Article
	for _, a := range fetched {
		if a.HasContent() {
			articles = append(articles, a)
		}
	}
	return articles
}

func (p *Pipeline) maxScrapes() int {
	if p.cfg.Pipeline.MaxScrapes <= 0 {
		return 3
	}
	return p.cfg.Pipeline.MaxScrapes
}

func (p *Pipeline) promptResults() int {
	if p.cfg.Pipeline.PromptResults <= 0 {
		return 5
	}
	return p.cfg.Pipeline.PromptResults
}

func domainLabel(rawURL string) string {
	return reputation.NormalizeDomain(rawURL)
}
