package reputation

import (
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// ImageSources classifies the pages a reverse image search matched
type ImageSources struct {
	credible   []string
	suspicious []string
}

// NewImageSources builds a classifier from credible source markers and
// unreliable keywords. Empty lists fall back to the built-in ones.
func NewImageSources(credible, keywords []string) *ImageSources {
	if len(credible) == 0 {
		credible = model.DefaultImageCredibleDomains()
	}
	if len(keywords) == 0 {
		keywords = model.DefaultUnreliableKeywords()
	}
	return &ImageSources{
		credible:   lowerAll(credible),
		suspicious: lowerAll(keywords),
	}
}

// IsCredible reports whether a match's source name or link names a credible outlet
func (s *ImageSources) IsCredible(source, link string) bool {
	haystack := strings.ToLower(source + " " + link)
	for _, marker := range s.credible {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	return false
}

// IsSuspicious reports whether a match's source or link contains an unreliable keyword
func (s *ImageSources) IsSuspicious(source, link string) bool {
	haystack := strings.ToLower(source + " " + link)
	for _, kw := range s.suspicious {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
