package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/util"
)

func newTestSerper(t *testing.T, handler http.HandlerFunc) *Serper {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := model.DefaultConfig().Search
	cfg.APIKey = "test-key"
	cfg.BaseURL = server.URL
	return NewSerper(cfg, util.ProxyConfig{})
}

func TestSearch(t *testing.T) {
	var gotQuery serperQuery
	s := newTestSerper(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-API-KEY") != "test-key" {
			t.Errorf("X-API-KEY = %q", r.Header.Get("X-API-KEY"))
		}
		_ = json.NewDecoder(r.Body).Decode(&gotQuery)

		_, _ = fmt.Fprint(w, `{
			"knowledgeGraph": {"title": "Earth", "description": "Third planet", "website": "https://www.nasa.gov/earth"},
			"organic": [
				{"title": "Is the <b>Earth</b> round?", "link": "https://www.bbc.com/news/earth", "snippet": "Yes &amp; no"},
				{"title": "Flat", "link": "https://blog.example.org/flat", "snippet": "", "date": "2 days ago"}
			]
		}`)
	})

	items, err := s.Search(context.Background(), "The Earth is round")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery.Q != "The Earth is round" || gotQuery.Num != 10 {
		t.Errorf("query = %+v", gotQuery)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	kg := items[0]
	if kg.Kind != model.EvidenceKindKnowledgeGraph || kg.Source != KnowledgeGraphSource || kg.Domain != "nasa.gov" {
		t.Errorf("knowledge graph item = %+v", kg)
	}

	hit := items[1]
	if hit.Title != "Is the Earth round?" {
		t.Errorf("Title = %q, want markup stripped", hit.Title)
	}
	if hit.Snippet != "Yes & no" {
		t.Errorf("Snippet = %q, want entities decoded", hit.Snippet)
	}
	if hit.Domain != "bbc.com" || hit.Source != "bbc.com" || hit.Kind != model.EvidenceKindOrganic {
		t.Errorf("organic item = %+v", hit)
	}
	if items[2].Date != "2 days ago" {
		t.Errorf("Date = %q", items[2].Date)
	}
}

func TestSearch_LimitsOrganicResults(t *testing.T) {
	s := newTestSerper(t, func(w http.ResponseWriter, r *http.Request) {
		var organic []string
		for i := 0; i < 15; i++ {
			organic = append(organic, fmt.Sprintf(`{"title":"r%d","link":"https://site%d.com/"}`, i, i))
		}
		_, _ = fmt.Fprintf(w, `{"organic":[%s]}`, strings.Join(organic, ","))
	})

	items, err := s.Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 10 {
		t.Errorf("got %d items, want 10", len(items))
	}
}

func TestSearch_Errors(t *testing.T) {
	s := newTestSerper(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
	})
	if _, err := s.Search(context.Background(), "q"); err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("Search() error = %v, want HTTP 401", err)
	}

	unconfigured := NewSerper(model.SearchConfig{}, util.ProxyConfig{})
	if _, err := unconfigured.Search(context.Background(), "q"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Search() error = %v, want ErrNotConfigured", err)
	}
}

func TestReverseImage(t *testing.T) {
	var gotQuery serperImageQuery
	s := newTestSerper(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images" {
			t.Errorf("path = %s, want /images", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotQuery)

		var images []string
		for i := 0; i < 25; i++ {
			images = append(images, fmt.Sprintf(`{"title":"img%d","source":"Site %d","link":"https://site%d.com/p"}`, i, i, i))
		}
		var related []string
		for i := 0; i < 7; i++ {
			related = append(related, fmt.Sprintf(`{"query":"context %d"}`, i))
		}
		_, _ = fmt.Fprintf(w, `{"images":[%s],"relatedSearches":[%s]}`,
			strings.Join(images, ","), strings.Join(related, ","))
	})

	res, err := s.ReverseImage(context.Background(), "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("ReverseImage() error = %v", err)
	}

	if !strings.HasPrefix(gotQuery.ImageBase64, "data:image/png;base64,") {
		t.Errorf("imageBase64 = %q", gotQuery.ImageBase64)
	}
	if gotQuery.GL != "us" || gotQuery.HL != "en" {
		t.Errorf("gl/hl = %s/%s", gotQuery.GL, gotQuery.HL)
	}
	if res.Total != 25 || len(res.Hits) != 20 {
		t.Errorf("Total/Hits = %d/%d, want 25/20", res.Total, len(res.Hits))
	}
	if len(res.Related) != 5 {
		t.Errorf("Related = %v, want 5", res.Related)
	}
}
