package credibility

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
)

// mockAssessor answers every request with a canned JSON body or error
type mockAssessor struct {
	mu      sync.Mutex
	answer  string
	err     error
	prompts []string
}

func (m *mockAssessor) Assess(_ context.Context, req llm.Request, out any) error {
	m.mu.Lock()
	m.prompts = append(m.prompts, req.Prompt)
	m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	return llm.ParseJSON(m.answer, out)
}

func (m *mockAssessor) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func TestResolve_StaticTable(t *testing.T) {
	ai := &mockAssessor{answer: `{"credibility_score": 10}`}
	r := NewResolver(reputation.NewDefaultTable(), ai, nil)

	got := r.Resolve(context.Background(), "https://www.reuters.com/world/")

	if got.Domain != "reuters.com" || got.Score != 95 {
		t.Errorf("Resolve() = %+v, want reuters.com/95", got)
	}
	if got.Category != model.CategoryCredible || got.AssessedBy != model.AssessedByStaticTable {
		t.Errorf("Category/AssessedBy = %s/%s", got.Category, got.AssessedBy)
	}
	if ai.calls() != 0 {
		t.Errorf("assessor called %d times for a listed domain", ai.calls())
	}
}

func TestResolve_UnreliableTable(t *testing.T) {
	r := NewResolver(reputation.NewDefaultTable(), nil, nil)

	got := r.Resolve(context.Background(), "http://infowars.com/story")
	if got.Score != 5 || got.Category != model.CategoryUnreliable {
		t.Errorf("Resolve() = %+v, want infowars.com/5/unreliable", got)
	}
}

func TestResolve_AIAssessment(t *testing.T) {
	ai := &mockAssessor{answer: "```json\n" + `{
		"credibility_score": "72",
		"category": "Moderate",
		"reasoning": "Regional outlet with editorial staff.",
		"red_flags": "occasional sensational headlines",
		"strengths": ["corrections policy"]
	}` + "\n```"}
	r := NewResolver(reputation.NewDefaultTable(), ai, nil)

	got := r.Resolve(context.Background(), "https://example-news.org/a")

	if got.Score != 72 || got.Category != model.CategoryModerate || got.AssessedBy != model.AssessedByAI {
		t.Errorf("Resolve() = %+v", got)
	}
	if len(got.RedFlags) != 1 || len(got.Strengths) != 1 {
		t.Errorf("RedFlags/Strengths = %v/%v", got.RedFlags, got.Strengths)
	}
	if ai.calls() != 1 || !strings.Contains(ai.prompts[0], "example-news.org") {
		t.Errorf("prompts = %v", ai.prompts)
	}
}

func TestResolve_FailsSoft(t *testing.T) {
	tests := []struct {
		name string
		ai   llm.Assessor
	}{
		{"no assessor", nil},
		{"not configured", &mockAssessor{err: llm.ErrNotConfigured}},
		{"upstream error", &mockAssessor{err: errors.New("503 from provider")}},
		{"unparseable", &mockAssessor{answer: "I think it's fine"}},
		{"missing score", &mockAssessor{answer: `{"category": "credible"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(reputation.NewDefaultTable(), tt.ai, nil)
			got := r.Resolve(context.Background(), "unknown-blog.net")

			want := Neutral("unknown-blog.net")
			if got.Domain != want.Domain || got.Score != 50 || got.Category != model.CategoryUnknown ||
				got.AssessedBy != model.AssessedByStaticTable || got.Reasoning != FallbackReasoning {
				t.Errorf("Resolve() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	ai := &mockAssessor{answer: `{"credibility_score": 30, "category": "unreliable"}`}
	r := NewResolver(reputation.NewDefaultTable(), ai, nil)

	items := []model.EvidenceItem{
		{Title: "Knowledge", Link: ""},
		{Link: "https://www.bbc.com/news/1"},
		{Link: "https://bbc.com/news/2"},
		{Link: "https://apnews.com/x"},
		{Link: "https://randomblog.example/post"},
	}

	got := r.Analyze(context.Background(), items, 4)

	if len(got.Domains) != 3 {
		t.Fatalf("Domains = %d, want 3 unique", len(got.Domains))
	}
	// both BBC hits count
	if got.CredibleCount != 3 || got.UnreliableCount != 1 || got.AIAssessedCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/1/1", got.CredibleCount, got.UnreliableCount, got.AIAssessedCount)
	}
	if want := (93.0 + 93.0 + 95.0 + 30.0) / 4; got.AverageCredibility != want {
		t.Errorf("AverageCredibility = %v, want %v", got.AverageCredibility, want)
	}
	if ai.calls() != 1 {
		t.Errorf("assessor called %d times, want 1", ai.calls())
	}
}

func TestAnalyze_CancelledContext(t *testing.T) {
	r := NewResolver(reputation.NewDefaultTable(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := r.Analyze(ctx, []model.EvidenceItem{{Link: "https://www.bbc.com/news/1"}}, 4)
	if got.AverageCredibility != 50 || got.CredibleCount != 0 || len(got.Domains) != 0 {
		t.Errorf("Analyze with cancelled context = %+v, want neutral", got)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	r := NewResolver(nil, nil, nil)
	got := r.Analyze(context.Background(), nil, 4)

	if got.AverageCredibility != 50 || got.CredibleCount != 0 {
		t.Errorf("Analyze(nil) = %+v", got)
	}
	if len(got.Domains) != 0 {
		t.Errorf("Domains = %v, want none", got.Domains)
	}
}
