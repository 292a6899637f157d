package score

import (
	"fmt"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

const (
	baselineScore      = 50.0
	baselineConfidence = 50.0
	noisyMatchCount    = 10
	excerptRunes       = 100
	maxImageReasons    = 3
)

// Flags added by the image aggregator
const (
	FlagNoMetadata = "No metadata - possible screenshot or stripped data"
)

// ImageSignals are the three independent findings about one image
type ImageSignals struct {
	Vision   model.VisionAnalysis
	Metadata model.MetadataRecord
	Reverse  model.ReverseSearchResult

	// VisionFailed marks a fallback vision result; its score is ignored
	VisionFailed bool
}

// adjustment is one additive change to score and confidence
type adjustment struct {
	score      float64
	confidence float64
}

// AggregateImage combines vision, metadata and reverse-search findings into
// the final image verdict. Adjustments are additive from a neutral baseline;
// the label and color come from the five-tier scale.
func AggregateImage(in ImageSignals) model.Verdict {
	score := baselineScore
	if !in.VisionFailed {
		score = in.Vision.CredibilityScore
	}
	confidence := baselineConfidence

	for _, adj := range []adjustment{
		calculateMetadata(in.Metadata),
		calculateReverse(in.Reverse),
		calculateManipulation(in.Vision),
	} {
		score += adj.score
		confidence += adj.confidence
	}

	credibility := ClampRound(score)
	label, color := ImageTier(credibility)

	return model.Verdict{
		Verdict:          label,
		CredibilityScore: credibility,
		Confidence:       float64(ClampRound(confidence)),
		Color:            color,
		Reasoning:        imageReasoning(in),
		RedFlags: DedupeFlags(
			in.Vision.RedFlags,
			in.Metadata.RedFlags,
			in.Reverse.RedFlags,
			imageFlags(in),
		),
		Image: &model.ImageDetails{
			ExtractedText:        in.Vision.ExtractedText,
			ImageType:            in.Vision.ImageType,
			Claims:               nonNil(in.Vision.Claims),
			ManipulationDetected: in.Vision.ManipulationDetected,
			ManipulationSigns:    nonNil(in.Vision.ManipulationSigns),
			Metadata:             in.Metadata,
			ReverseSearch:        in.Reverse,
		},
	}
}

func calculateMetadata(m model.MetadataRecord) adjustment {
	var adj adjustment
	if m.Edited {
		adj.score -= 10
		adj.confidence += 10
	}
	if !m.HasMetadata {
		adj.score -= 5
	}
	return adj
}

func calculateReverse(r model.ReverseSearchResult) adjustment {
	var adj adjustment
	if r.MatchesFound == 0 {
		return adj
	}
	adj.confidence += 20
	switch {
	case len(r.CredibleSources) > 0:
		adj.score += 10
	case r.MatchesFound > noisyMatchCount:
		adj.score -= 15
	}
	return adj
}

func calculateManipulation(v model.VisionAnalysis) adjustment {
	if !v.ManipulationDetected {
		return adjustment{}
	}
	return adjustment{score: -25, confidence: 15}
}

func imageFlags(in ImageSignals) []string {
	var flags []string
	if !in.Metadata.HasMetadata {
		flags = append(flags, FlagNoMetadata)
	}
	if in.Reverse.MatchesFound > noisyMatchCount && len(in.Reverse.CredibleSources) == 0 {
		flags = append(flags, fmt.Sprintf("Found %d matches but none from credible sources", in.Reverse.MatchesFound))
	}
	return flags
}

func imageReasoning(in ImageSignals) string {
	var parts []string
	if text := strings.TrimSpace(in.Vision.ExtractedText); text != "" {
		parts = append(parts, fmt.Sprintf("Image contains text: '%s'", excerpt(text, excerptRunes)))
	}
	if in.Vision.ManipulationDetected {
		parts = append(parts, "AI detected signs of image manipulation")
	}
	if n := len(in.Reverse.CredibleSources); n > 0 {
		parts = append(parts, fmt.Sprintf("Found in %d credible sources", n))
	}
	if in.Reverse.EarliestDate != "" {
		parts = append(parts, "First appeared online: "+in.Reverse.EarliestDate)
	}

	if len(parts) == 0 {
		if in.Vision.Reasoning != "" {
			return in.Vision.Reasoning
		}
		return "Unable to determine credibility"
	}
	if len(parts) > maxImageReasons {
		parts = parts[:maxImageReasons]
	}
	return strings.Join(parts, ". ")
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
