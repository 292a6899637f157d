package pipeline

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/credibility"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/extract"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/fetch"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/score"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

// ValidURL reports whether rawURL is an absolute http(s) URL with a host
func ValidURL(rawURL string) bool {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return false
	}
	u, err := url.Parse(rawURL)
	return err == nil && u.Host != ""
}

// VerifyURL checks an article: rate its domain, read it, look for other
// coverage of the same story, then ask the assessor for a verdict
func (p *Pipeline) VerifyURL(ctx context.Context, rawURL string) (model.Verdict, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !ValidURL(rawURL) {
		return model.Verdict{}, ErrInvalidURL
	}

	start := time.Now()
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	domain := credibility.Neutral(domainLabel(rawURL))
	article := model.Article{URL: rawURL}
	worker.FanOut(ctx, 2, 2, func(ctx context.Context, i int) {
		if i == 0 {
			domain = p.resolver.Resolve(ctx, rawURL)
			return
		}
		article = p.readArticle(ctx, rawURL)
	})

	query := article.Title
	if query == "" {
		query = extract.SubjectFromURL(rawURL)
	}
	items := p.search(ctx, query)

	var answer verdictAnswer
	err := p.assess(ctx, llm.Request{
		Prompt:      urlPrompt(rawURL, domain, article, items, p.promptResults()),
		Temperature: verdictTemperature,
	}, &answer)
	if err != nil {
		log.Printf("warning: url assessment failed: %v", err)
		return p.finish(NameURL, start, urlError(rawURL, article, domain, err)), nil
	}

	v, err := score.FromAssessment(answer.assessment())
	if err != nil {
		log.Printf("warning: url assessment rejected: %v", err)
		return p.finish(NameURL, start, urlError(rawURL, article, domain, err)), nil
	}

	v.URL = rawURL
	v.Title = article.Title
	v.DomainInfo = &domain
	v.SourceAssessment = strings.TrimSpace(answer.SourceAssessment)
	v.ContentQuality = strings.TrimSpace(answer.ContentQuality)
	v.Corroboration = strings.TrimSpace(answer.Corroboration)
	v.SearchResults = model.IntPtr(len(items))
	return p.finish(NameURL, start, v), nil
}

// readArticle fetches the page under review; failures yield an empty article
func (p *Pipeline) readArticle(ctx context.Context, rawURL string) model.Article {
	if p.fetcher == nil {
		return model.Article{URL: rawURL}
	}
	article, err := p.fetcher.Article(ctx, rawURL, fetch.Options{})
	p.metrics.Upstream("scrape", err)
	if err != nil {
		log.Printf("warning: could not read %s: %v", rawURL, err)
		return model.Article{URL: rawURL}
	}
	return article
}

func urlError(rawURL string, article model.Article, domain model.DomainScore, err error) model.Verdict {
	v := score.Error(analysisFailed(err))
	v.URL = rawURL
	v.Title = article.Title
	v.DomainInfo = &domain
	return v
}
