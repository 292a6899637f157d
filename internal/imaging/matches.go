package imaging

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/search"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"01/02/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

var relativeDate = regexp.MustCompile(`^(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago$`)

// AnalyzeMatches classifies reverse-image-search hits into credible and
// suspicious sources and finds the earliest reported appearance
func AnalyzeMatches(results *search.ImageResults, sources *reputation.ImageSources) model.ReverseSearchResult {
	return analyzeMatches(results, sources, time.Now())
}

func analyzeMatches(results *search.ImageResults, sources *reputation.ImageSources, now time.Time) model.ReverseSearchResult {
	out := model.ReverseSearchResult{}
	if results == nil {
		return out
	}

	out.MatchesFound = results.Total
	out.RelatedContexts = results.Related

	var dates []string
	for _, hit := range results.Hits {
		match := model.ImageMatch{
			Title:    hit.Title,
			Source:   hit.Source,
			Link:     hit.Link,
			Date:     hit.Date,
			Credible: sources.IsCredible(hit.Source, hit.Link),
		}
		out.Sources = append(out.Sources, match)

		if match.Credible {
			out.CredibleSources = append(out.CredibleSources, match)
		}
		if sources.IsSuspicious(hit.Source, hit.Link) {
			out.RedFlags = append(out.RedFlags, "Found on suspicious site: "+hit.Source)
		}
		if hit.Date != "" {
			dates = append(dates, hit.Date)
		}
	}

	if earliest := EarliestDate(dates, now); earliest != "" {
		out.EarliestDate = earliest
		out.RedFlags = append(out.RedFlags, "Image first appeared: "+earliest)
	}

	return out
}

// EarliestDate returns the chronologically earliest of the reported date
// strings, as reported. Dates in no known layout are ignored; if none
// parses, the lexicographic minimum is returned.
func EarliestDate(dates []string, now time.Time) string {
	var earliest string
	var earliestTime time.Time
	var lexMin string

	for _, raw := range dates {
		d := strings.TrimSpace(raw)
		if d == "" {
			continue
		}
		if lexMin == "" || d < lexMin {
			lexMin = d
		}
		t, ok := parseDate(d, now)
		if !ok {
			continue
		}
		if earliest == "" || t.Before(earliestTime) {
			earliest, earliestTime = d, t
		}
	}

	if earliest == "" {
		return lexMin
	}
	return earliest
}

func parseDate(s string, now time.Time) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	m := relativeDate.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	switch m[2] {
	case "second":
		return now.Add(-time.Duration(n) * time.Second), true
	case "minute":
		return now.Add(-time.Duration(n) * time.Minute), true
	case "hour":
		return now.Add(-time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, -n), true
	case "week":
		return now.AddDate(0, 0, -7*n), true
	case "month":
		return now.AddDate(0, -n, 0), true
	default:
		return now.AddDate(-n, 0, 0), true
	}
}
