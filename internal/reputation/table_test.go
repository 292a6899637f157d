package reputation

import (
	"testing"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		desc     string
	}{
		{"https://www.reuters.com/world/article", "reuters.com", "Scheme and www stripped"},
		{"http://News.BBC.com:8080/path", "news.bbc.com", "Port removed and lowercased"},
		{"apnews.com", "apnews.com", "Bare host"},
		{"www.nature.com/articles/1", "nature.com", "Bare host with path"},
		{"https://bücher.example/", "xn--bcher-kva.example", "IDN converted to ASCII"},
		{"", "", "Empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := NormalizeDomain(tt.input); got != tt.expected {
				t.Errorf("NormalizeDomain(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := NewDefaultTable()

	tests := []struct {
		domain   string
		score    int
		category model.Category
		found    bool
		desc     string
	}{
		{"reuters.com", 95, model.CategoryCredible, true, "Exact credible match"},
		{"uk.reuters.com", 95, model.CategoryCredible, true, "Subdomain contains credible entry"},
		{"en.wikipedia.org", 80, model.CategoryCredible, true, "Lowest credible score"},
		{"infowars.com", 5, model.CategoryUnreliable, true, "Unreliable match"},
		{"example.com", 0, model.CategoryUnknown, false, "Unknown domain"},
		{"", 0, model.CategoryUnknown, false, "Empty domain"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			entry, category, found := table.Lookup(tt.domain)
			if found != tt.found {
				t.Fatalf("Expected found=%v for %s, got %v", tt.found, tt.domain, found)
			}
			if category != tt.category {
				t.Errorf("Expected category %s, got %s", tt.category, category)
			}
			if found && entry.Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, entry.Score)
			}
		})
	}
}

func TestTable_CredibleCheckedFirst(t *testing.T) {
	table := NewTable(
		[]Entry{{Domain: "news.com", Score: 90}},
		[]Entry{{Domain: "fakenews.com", Score: 10}},
	)

	// "fakenews.com" contains both entries; the credible list wins
	_, category, found := table.Lookup("fakenews.com")
	if !found {
		t.Fatal("Expected a match")
	}
	if category != model.CategoryCredible {
		t.Errorf("Expected credible list to win, got %s", category)
	}
}

func TestTable_FirstPositionalMatch(t *testing.T) {
	table := NewTable([]Entry{
		{Domain: "times.com", Score: 81},
		{Domain: "nytimes.com", Score: 90},
	}, nil)

	entry, _, _ := table.Lookup("nytimes.com")
	if entry.Domain != "times.com" {
		t.Errorf("Expected first declared entry to win, got %s", entry.Domain)
	}
}

func TestTable_Immutable(t *testing.T) {
	credible := []Entry{{Domain: "reuters.com", Score: 95}}
	table := NewTable(credible, nil)

	credible[0].Domain = "changed.com"

	if !table.IsCredible("reuters.com") {
		t.Error("Table should not observe changes to its inputs")
	}
}

func TestNewTableFromConfig_FallsBackToDefaults(t *testing.T) {
	table := NewTableFromConfig(model.ReputationConfig{})
	if !table.IsCredible("reuters.com") {
		t.Error("Expected default credible list to include reuters.com")
	}
	if _, category, ok := table.Lookup("infowars.com"); !ok || category != model.CategoryUnreliable {
		t.Errorf("Expected infowars.com in default unreliable list, got %v (found=%v)", category, ok)
	}
}

func TestImageSources(t *testing.T) {
	sources := NewImageSources(nil, nil)

	if !sources.IsCredible("Reuters", "https://www.reuters.com/pictures") {
		t.Error("Expected Reuters to be credible")
	}
	if sources.IsCredible("Some Blog", "https://blog.example.com") {
		t.Error("Expected unknown blog not to be credible")
	}
	if !sources.IsSuspicious("ViralNewsNow", "https://viralnewsnow.example/story") {
		t.Error("Expected viral keyword to be suspicious")
	}
	if sources.IsSuspicious("BBC", "https://bbc.co.uk") {
		t.Error("Expected BBC not to be suspicious")
	}
}
