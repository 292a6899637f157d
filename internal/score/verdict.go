package score

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// Assessment is the AI assessor's judgment of a text claim or article,
// decoded but not yet validated
type Assessment struct {
	Verdict               string
	CredibilityScore      *float64
	Confidence            *float64
	Reasoning             string
	SupportingEvidence    []string
	ContradictingEvidence []string
	CredibleSources       []string
	RedFlags              []string
	Recommendation        string
}

// Validation failures of an Assessment
var (
	ErrMissingVerdict = errors.New("assessment has no verdict")
	ErrUnknownVerdict = errors.New("assessment verdict is not a known label")
	ErrMissingScore   = errors.New("assessment has no credibility_score")
)

// FromAssessment validates an AI assessment and turns it into a verdict.
// The label, reasoning and evidence lists pass through; the score is
// clamped and the color derived from it.
func FromAssessment(a Assessment) (model.Verdict, error) {
	if normalizeLabel(a.Verdict) == "" {
		return model.Verdict{}, ErrMissingVerdict
	}
	label, ok := ParseLabel(a.Verdict)
	if !ok || label == model.LabelError {
		return model.Verdict{}, fmt.Errorf("%w: %q", ErrUnknownVerdict, a.Verdict)
	}
	if a.CredibilityScore == nil {
		return model.Verdict{}, ErrMissingScore
	}

	credibility := ClampRound(*a.CredibilityScore)
	confidence := 50.0
	if a.Confidence != nil {
		confidence = Clamp(*a.Confidence)
	}

	return model.Verdict{
		Verdict:               label,
		CredibilityScore:      credibility,
		Confidence:            confidence,
		Color:                 TextColor(credibility),
		Reasoning:             strings.TrimSpace(a.Reasoning),
		SupportingEvidence:    a.SupportingEvidence,
		ContradictingEvidence: a.ContradictingEvidence,
		CredibleSources:       a.CredibleSources,
		RedFlags:              DedupeFlags(a.RedFlags),
		Recommendation:        strings.TrimSpace(a.Recommendation),
	}, nil
}

// Error is the verdict for a request whose load-bearing AI judgment failed
func Error(reason string) model.Verdict {
	return model.Verdict{
		Verdict:          model.LabelError,
		CredibilityScore: 0,
		Confidence:       0,
		Color:            model.ColorGray,
		Reasoning:        reason,
	}
}

// ParseLabel reads a free-text verdict label leniently
func ParseLabel(s string) (model.Label, bool) {
	return model.ParseLabel(normalizeLabel(s))
}

// normalizeLabel upper-cases and collapses separators so "likely_true" and
// "Likely  True" both read as "LIKELY TRUE"
func normalizeLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
