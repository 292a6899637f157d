package score

import (
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

const maxClaimReasons = 3

// Unverified is the verdict for text in which no checkable claim was found
func Unverified() model.Verdict {
	return model.Verdict{
		Verdict:          model.LabelUnverified,
		CredibilityScore: 50,
		Confidence:       30,
		Color:            model.ColorGray,
		Reasoning:        "No verifiable claims found",
	}
}

// AggregateClaims folds per-claim verifications into one overall verdict.
// Shares are taken over all claims: more than half FALSE wins first, then
// more than 70% TRUE, then more than half TRUE.
func AggregateClaims(results []model.ClaimVerification) model.Verdict {
	if len(results) == 0 {
		return Unverified()
	}

	var trueCount, falseCount int
	var confidenceSum float64
	var reasons, flags, sources []string
	for _, r := range results {
		switch r.Verdict {
		case model.LabelTrue:
			trueCount++
		case model.LabelFalse:
			falseCount++
		}
		confidenceSum += Clamp(r.Confidence)
		if len(reasons) < maxClaimReasons && r.Reasoning != "" {
			reasons = append(reasons, r.Reasoning)
		}
		flags = append(flags, r.RedFlags...)
		sources = append(sources, r.CredibleSources...)
	}

	total := float64(len(results))
	label, credibility := model.LabelUncertain, 50
	switch {
	case float64(falseCount)/total > 0.5:
		label, credibility = model.LabelLikelyFalse, 20
	case float64(trueCount)/total > 0.7:
		label, credibility = model.LabelLikelyTrue, 85
	case float64(trueCount)/total > 0.5:
		label, credibility = model.LabelMixed, 60
	}

	return model.Verdict{
		Verdict:          label,
		CredibilityScore: credibility,
		Confidence:       confidenceSum / total,
		Color:            TextColor(credibility),
		Reasoning:        strings.Join(reasons, " | "),
		RedFlags:         DedupeFlags(flags),
		CredibleSources:  DedupeFlags(sources),
		TotalClaims:      len(results),
		Claims:           results,
	}
}
