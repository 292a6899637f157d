package extract

import (
	stdhtml "html"
	"net/url"
	"regexp"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Defaults for Article when the caller passes zero
const (
	DefaultParagraphs = 10
	DefaultMaxChars   = 2000
)

var (
	containerClass = regexp.MustCompile(`article|content|post`)
	textPolicy     = bluemonday.StrictPolicy()
)

// Article extracts the title and main text of an HTML page. The text comes
// from the first paragraphs <p> elements of the main container (an
// <article>, else the first div whose class mentions article, content or
// post, else the whole page); empty ones count toward the limit. It is
// whitespace-collapsed and cut to maxChars characters. Pages without
// paragraph markup fall back to readability. Parsing never fails: a page
// that yields nothing returns an Article with no content.
func Article(htmlContent, pageURL string, paragraphs, maxChars int) model.Article {
	if paragraphs <= 0 {
		paragraphs = DefaultParagraphs
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	article := model.Article{URL: pageURL}

	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return article
	}
	doc := goquery.NewDocumentFromNode(root)
	doc.Find("script, style, noscript").Remove()

	article.Title = cleanText(doc.Find("title").First().Text())

	var texts []string
	mainContainer(doc).Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if i >= paragraphs {
			return false
		}
		if text := strings.TrimSpace(p.Text()); text != "" {
			texts = append(texts, text)
		}
		return true
	})
	content := cleanText(strings.Join(texts, " "))

	if content == "" {
		if title, text := readable(htmlContent, pageURL); text != "" {
			content = text
			if article.Title == "" {
				article.Title = title
			}
		}
	}

	article.Content = truncateRunes(content, maxChars)
	return article
}

func mainContainer(doc *goquery.Document) *goquery.Selection {
	if a := doc.Find("article").First(); a.Length() > 0 {
		return a
	}
	div := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && containerClass.MatchString(class)
	}).First()
	if div.Length() > 0 {
		return div
	}
	return doc.Selection
}

// readable runs readability over the raw page
func readable(htmlContent, pageURL string) (string, string) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}
	art, err := readability.FromReader(strings.NewReader(htmlContent), parsed)
	if err != nil {
		return "", ""
	}
	return cleanText(art.Title), cleanText(art.TextContent)
}

// cleanText strips any markup left in extracted text and collapses whitespace
func cleanText(s string) string {
	s = stdhtml.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
