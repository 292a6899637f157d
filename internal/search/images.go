package search

import (
	"context"
	"encoding/base64"
)

const maxRelated = 5

// ImageHit is one page on which the image was found
type ImageHit struct {
	Title   string
	Source  string
	Link    string
	Snippet string
	Date    string
}

// ImageResults is the raw answer of a reverse image search
type ImageResults struct {
	Total   int        // Matches reported upstream
	Hits    []ImageHit // First maxImages matches
	Related []string   // Related search queries
}

type serperImageQuery struct {
	ImageBase64 string `json:"imageBase64"`
	GL          string `json:"gl,omitempty"`
	HL          string `json:"hl,omitempty"`
}

type serperImagesResponse struct {
	Images []struct {
		Title   string `json:"title"`
		Source  string `json:"source"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Date    string `json:"date"`
	} `json:"images"`
	RelatedSearches []struct {
		Query string `json:"query"`
	} `json:"relatedSearches"`
}

// ReverseImage searches for pages carrying the given image
func (s *Serper) ReverseImage(ctx context.Context, mimeType string, data []byte) (*ImageResults, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.imageTimeout)
	defer cancel()

	query := serperImageQuery{
		ImageBase64: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		GL:          s.country,
		HL:          s.language,
	}

	var resp serperImagesResponse
	if err := s.post(ctx, "/images", query, &resp); err != nil {
		return nil, err
	}

	results := &ImageResults{Total: len(resp.Images)}
	for i, img := range resp.Images {
		if i >= s.maxImages {
			break
		}
		results.Hits = append(results.Hits, ImageHit{
			Title:   s.clean(img.Title),
			Source:  img.Source,
			Link:    img.Link,
			Snippet: s.clean(img.Snippet),
			Date:    img.Date,
		})
	}
	for i, rel := range resp.RelatedSearches {
		if i >= maxRelated {
			break
		}
		if rel.Query != "" {
			results.Related = append(results.Related, rel.Query)
		}
	}

	return results, nil
}
