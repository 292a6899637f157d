package extract

import (
	"net/url"
	"strings"
	"unicode"
)

// SubjectFromURL derives a human-readable subject from a URL: the last path
// segment that contains letters, de-slugified and without file extension.
// A URL without such a segment yields its host.
func SubjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg, err := url.PathUnescape(segments[i])
		if err != nil {
			seg = segments[i]
		}

		// Remove file extensions
		if idx := strings.LastIndex(seg, "."); idx > 0 {
			seg = seg[:idx]
		}

		// De-slugify
		seg = strings.NewReplacer("_", " ", "-", " ", "+", " ").Replace(seg)
		seg = strings.Join(strings.Fields(seg), " ")

		if strings.IndexFunc(seg, unicode.IsLetter) >= 0 {
			return seg
		}
	}

	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
