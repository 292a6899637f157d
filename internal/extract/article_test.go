package extract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestArticle_PrefersArticleElement(t *testing.T) {
	page := `<html><head><title> Storm hits coast </title><script>var x = "<p>nope</p>";</script></head>
	<body>
		<div class="sidebar"><p>Subscribe now</p></div>
		<article>
			<p>First   paragraph.</p>
			<style>p { color: red }</style>
			<p>Second
			paragraph.</p>
		</article>
	</body></html>`

	got := Article(page, "https://news.example/storm", 10, 2000)

	if got.Title != "Storm hits coast" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Content != "First paragraph. Second paragraph." {
		t.Errorf("Content = %q", got.Content)
	}
	if got.URL != "https://news.example/storm" {
		t.Errorf("URL = %q", got.URL)
	}
}

func TestArticle_ClassContainer(t *testing.T) {
	page := `<html><body>
		<div class="nav"><p>Menu</p></div>
		<div class="main-content"><p>Body text.</p></div>
	</body></html>`

	got := Article(page, "https://x.example/", 10, 2000)
	if got.Content != "Body text." {
		t.Errorf("Content = %q, want the content div only", got.Content)
	}
}

func TestArticle_WholeDocumentAndLimits(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		b.WriteString("<p>" + strings.Repeat("ü", 300) + "</p>")
	}
	b.WriteString("</body></html>")

	got := Article(b.String(), "https://x.example/", 10, 2000)
	if n := utf8.RuneCountInString(got.Content); n != 2000 {
		t.Errorf("content has %d runes, want 2000", n)
	}

	few := Article(b.String(), "https://x.example/", 2, 5000)
	if n := utf8.RuneCountInString(few.Content); n != 601 {
		t.Errorf("two paragraphs give %d runes, want 601", n)
	}
}

func TestArticle_EmptyParagraphsCountTowardLimit(t *testing.T) {
	page := `<html><body><article>
		<p></p><p>   </p><p>One.</p><p>Two.</p>
	</article></body></html>`

	got := Article(page, "https://x.example/", 3, 2000)
	if got.Content != "One." {
		t.Errorf("Content = %q, want only the third paragraph", got.Content)
	}
}

func TestArticle_NoContent(t *testing.T) {
	got := Article("", "https://x.example/", 10, 2000)
	if got.HasContent() {
		t.Errorf("empty page should have no content: %+v", got)
	}
}

func TestSubjectFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://news.example/2024/05/12/moon-landing-was-real.html", "moon landing was real"},
		{"https://en.wikipedia.org/wiki/Great_Wall_of_China", "Great Wall of China"},
		{"https://site.example/story/12345", "story"},
		{"https://www.example.com/", "example.com"},
		{"https://x.example/search/caf%C3%A9-prices", "café prices"},
	}

	for _, tt := range tests {
		if got := SubjectFromURL(tt.url); got != tt.want {
			t.Errorf("SubjectFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
