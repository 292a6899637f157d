package reputation

import (
	"net/url"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"golang.org/x/net/idna"
)

// Entry is one row of the reputation table
type Entry = model.ReputationEntry

// Table is the static domain reputation table. It is built once and never
// modified afterwards, so it is safe for concurrent use.
type Table struct {
	credible   []Entry
	unreliable []Entry
}

// NewTable builds a table from the credible and unreliable lists. Order is
// preserved: lookups return the first positional match.
func NewTable(credible, unreliable []Entry) *Table {
	t := &Table{
		credible:   make([]Entry, 0, len(credible)),
		unreliable: make([]Entry, 0, len(unreliable)),
	}
	for _, e := range credible {
		if d := strings.ToLower(strings.TrimSpace(e.Domain)); d != "" {
			t.credible = append(t.credible, Entry{Domain: d, Score: clampScore(e.Score)})
		}
	}
	for _, e := range unreliable {
		if d := strings.ToLower(strings.TrimSpace(e.Domain)); d != "" {
			t.unreliable = append(t.unreliable, Entry{Domain: d, Score: clampScore(e.Score)})
		}
	}
	return t
}

// NewDefaultTable builds the table from the built-in lists
func NewDefaultTable() *Table {
	return NewTable(model.DefaultCredibleSources(), model.DefaultUnreliableSources())
}

// NewTableFromConfig builds the table from configuration, falling back to the
// built-in lists for any list left empty
func NewTableFromConfig(cfg model.ReputationConfig) *Table {
	credible := cfg.Credible
	if len(credible) == 0 {
		credible = model.DefaultCredibleSources()
	}
	unreliable := cfg.Unreliable
	if len(unreliable) == 0 {
		unreliable = model.DefaultUnreliableSources()
	}
	return NewTable(credible, unreliable)
}

// Lookup finds the table entry for a normalized domain. The credible list is
// checked before the unreliable list; within a list the first entry whose
// domain is a substring of the given domain wins.
func (t *Table) Lookup(domain string) (Entry, model.Category, bool) {
	if domain == "" {
		return Entry{}, model.CategoryUnknown, false
	}
	for _, e := range t.credible {
		if strings.Contains(domain, e.Domain) {
			return e, model.CategoryCredible, true
		}
	}
	for _, e := range t.unreliable {
		if strings.Contains(domain, e.Domain) {
			return e, model.CategoryUnreliable, true
		}
	}
	return Entry{}, model.CategoryUnknown, false
}

// IsCredible reports whether the domain matches the credible list
func (t *Table) IsCredible(domain string) bool {
	_, cat, ok := t.Lookup(domain)
	return ok && cat == model.CategoryCredible
}

// NormalizeDomain reduces a URL or bare host to the form used for table
// lookups: lowercase ASCII host, no scheme, port or leading "www.".
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.ToLower(strings.TrimSuffix(parsed.Hostname(), "."))
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	return strings.TrimPrefix(host, "www.")
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
