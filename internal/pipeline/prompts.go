package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

const textRules = `VERIFICATION CRITERIA:
1. FACTUAL ACCURACY: Are the claims supported by evidence from credible sources?
2. SOURCE RELIABILITY: Are credible news agencies (Reuters, BBC, AP) reporting this?
3. CONSISTENCY: Do multiple independent sources agree?
4. CONTRADICTIONS: Are there any contradictions in the evidence?
5. RECENCY: For recent events, is there news coverage from last 48 hours?

IMPORTANT RULES:
- If a major event (death, disaster, breakthrough) and NO credible sources report it -> LIKELY FALSE
- If found ONLY on unreliable sites -> FALSE
- If multiple credible sources confirm -> LIKELY TRUE
- If sources contradict each other -> UNCERTAIN

Return ONLY a JSON object:
{
    "verdict": "TRUE" | "LIKELY TRUE" | "UNCERTAIN" | "LIKELY FALSE" | "FALSE",
    "credibility_score": 0-100,
    "confidence": 0-100,
    "reasoning": "Clear 2-3 sentence explanation of why this verdict was reached",
    "supporting_evidence": ["Key evidence supporting the verdict"],
    "contradicting_evidence": ["Any contradictions found"],
    "credible_sources_found": ["List credible sources that covered this"],
    "red_flags": ["Any warning signs found"],
    "recommendation": "What should users do with this information"
}`

const urlRules = `VERIFICATION:
1. Is the source credible?
2. Do other credible sources cover the same story?
3. Is the content factual or opinion/misleading?
4. Any sensationalism or clickbait?

Return ONLY a JSON object:
{
    "verdict": "TRUE" | "LIKELY TRUE" | "UNCERTAIN" | "LIKELY FALSE" | "FALSE",
    "credibility_score": 0-100,
    "confidence": 0-100,
    "reasoning": "Explanation",
    "source_assessment": "Assessment of the source credibility",
    "content_quality": "Assessment of article content quality",
    "corroboration": "Are other sources reporting the same?",
    "red_flags": ["Any issues found"]
}`

const claimsPrompt = `Extract verifiable claims from: %q

Return a JSON object:
{"claims": [{"claim": "...", "subject": "...", "type": "fact/statistic/event/quote", "verifiable": true}]}

If there are no claims, return: {"claims": []}`

const claimRules = `Analyze:
1. Is this found in credible sources (Reuters, BBC, AP, CNN)?
2. Do fact-checkers confirm or deny?
3. For recent events - is there news coverage?
4. Any contradictions?

Return ONLY a JSON object:
{
    "verdict": "TRUE" | "FALSE" | "UNCERTAIN",
    "confidence": 0-100,
    "reasoning": "2-3 sentences why",
    "credible_sources": ["list sources found"],
    "red_flags": ["issues found"]
}`

func extractPrompt(text string) string {
	return fmt.Sprintf(claimsPrompt, text)
}

func textPrompt(claim string, items []model.EvidenceItem, articles []model.Article, analysis model.SourceAnalysis, limit int) string {
	var b strings.Builder
	b.WriteString("You are an expert fact-checker. Analyze this claim for truthfulness.\n\n")
	fmt.Fprintf(&b, "CLAIM TO VERIFY:\n%q\n\n", claim)

	b.WriteString("WEB SEARCH RESULTS:\n")
	writeResults(&b, items, limit, true)

	b.WriteString("\nSCRAPED ARTICLE CONTENT FROM CREDIBLE SOURCES:\n")
	if len(articles) == 0 {
		b.WriteString("(none)\n")
	}
	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Source: %s\nTitle: %s\nContent: %s...\n", domainLabel(a.URL), a.Title, truncate(a.Content, 500))
	}

	b.WriteString("\nSOURCE CREDIBILITY ANALYSIS:\n")
	fmt.Fprintf(&b, "- Average source credibility: %.0f/100\n", analysis.AverageCredibility)
	fmt.Fprintf(&b, "- Credible sources found: %d\n", analysis.CredibleCount)
	fmt.Fprintf(&b, "- Unreliable sources found: %d\n", analysis.UnreliableCount)
	fmt.Fprintf(&b, "- AI-assessed sources: %d\n\n", analysis.AIAssessedCount)

	b.WriteString(textRules)
	return b.String()
}

func urlPrompt(rawURL string, domain model.DomainScore, article model.Article, items []model.EvidenceItem, limit int) string {
	var b strings.Builder
	b.WriteString("You are an expert fact-checker. Analyze this article for credibility.\n\n")
	fmt.Fprintf(&b, "ARTICLE URL: %s\n", rawURL)
	fmt.Fprintf(&b, "SOURCE DOMAIN: %s\n", domain.Domain)
	fmt.Fprintf(&b, "DOMAIN CREDIBILITY: %d/100 (%s)\n", domain.Score, domain.Category)
	if domain.AssessedBy == model.AssessedByAI {
		fmt.Fprintf(&b, "AI ASSESSMENT: %s\n", domain.Reasoning)
		if len(domain.RedFlags) > 0 {
			fmt.Fprintf(&b, "Red Flags: %s\n", strings.Join(domain.RedFlags, ", "))
		}
		if len(domain.Strengths) > 0 {
			fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(domain.Strengths, ", "))
		}
	}

	fmt.Fprintf(&b, "\nARTICLE TITLE: %s\n\n", article.Title)
	b.WriteString("ARTICLE CONTENT:\n")
	if article.HasContent() {
		b.WriteString(truncate(article.Content, 1500))
	} else {
		b.WriteString("(the article text could not be retrieved; judge from the source and coverage)")
	}

	b.WriteString("\n\nOTHER SOURCES COVERING SAME TOPIC:\n")
	writeResults(&b, items, limit, false)
	b.WriteString("\n")

	b.WriteString(urlRules)
	return b.String()
}

func claimPrompt(claim model.ExtractedClaim, items []model.EvidenceItem, reviews []model.FactCheckReview, limit int) string {
	type result struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
		Source  string `json:"source"`
	}
	var results []result
	for i, item := range items {
		if i >= limit {
			break
		}
		results = append(results, result{Title: item.Title, Snippet: item.Snippet, Link: item.Link, Source: item.Source})
	}
	if results == nil {
		results = []result{}
	}
	if reviews == nil {
		reviews = []model.FactCheckReview{}
	}

	searchJSON, _ := json.MarshalIndent(results, "", "  ")
	reviewJSON, _ := json.MarshalIndent(reviews, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "CLAIM: %s\n\n", claim.Claim)
	fmt.Fprintf(&b, "WEB SEARCH RESULTS:\n%s\n\n", searchJSON)
	fmt.Fprintf(&b, "FACT-CHECKER RESULTS:\n%s\n\n", reviewJSON)
	b.WriteString(claimRules)
	return b.String()
}

func writeResults(b *strings.Builder, items []model.EvidenceItem, limit int, withSnippet bool) {
	if len(items) == 0 {
		b.WriteString("(no search results)\n")
		return
	}
	for i, item := range items {
		if i >= limit {
			break
		}
		source := item.Source
		if source == "" {
			source = item.Domain
		}
		if withSnippet {
			fmt.Fprintf(b, "- [%s] %s: %s\n", source, item.Title, truncate(item.Snippet, 150))
		} else {
			fmt.Fprintf(b, "- [%s] %s\n", source, item.Title)
		}
	}
}
