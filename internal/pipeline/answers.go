package pipeline

import (
	"encoding/json"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/score"
)

// verdictAnswer is the AI judgment of a claim or an article
type verdictAnswer struct {
	Verdict               string         `json:"verdict"`
	CredibilityScore      llm.Number     `json:"credibility_score"`
	Confidence            llm.Number     `json:"confidence"`
	Reasoning             string         `json:"reasoning"`
	SupportingEvidence    llm.StringList `json:"supporting_evidence"`
	ContradictingEvidence llm.StringList `json:"contradicting_evidence"`
	CredibleSources       llm.StringList `json:"credible_sources_found"`
	RedFlags              llm.StringList `json:"red_flags"`
	Recommendation        string         `json:"recommendation"`

	// Article judgments only
	SourceAssessment string `json:"source_assessment"`
	ContentQuality   string `json:"content_quality"`
	Corroboration    string `json:"corroboration"`
}

func (a verdictAnswer) assessment() score.Assessment {
	return score.Assessment{
		Verdict:               a.Verdict,
		CredibilityScore:      numberPtr(a.CredibilityScore),
		Confidence:            numberPtr(a.Confidence),
		Reasoning:             a.Reasoning,
		SupportingEvidence:    a.SupportingEvidence,
		ContradictingEvidence: a.ContradictingEvidence,
		CredibleSources:       a.CredibleSources,
		RedFlags:              a.RedFlags,
		Recommendation:        a.Recommendation,
	}
}

// claimAnswer is the AI judgment of one extracted claim
type claimAnswer struct {
	Verdict         string         `json:"verdict"`
	Confidence      llm.Number     `json:"confidence"`
	Reasoning       string         `json:"reasoning"`
	CredibleSources llm.StringList `json:"credible_sources"`
	RedFlags        llm.StringList `json:"red_flags"`
}

type extractedClaim struct {
	Claim      string   `json:"claim"`
	Subject    string   `json:"subject"`
	Type       string   `json:"type"`
	Verifiable llm.Bool `json:"verifiable"`
}

// claimList decodes either {"claims": [...]} or a bare array
type claimList []model.ExtractedClaim

func (l *claimList) UnmarshalJSON(data []byte) error {
	var items []extractedClaim
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapped struct {
			Claims []extractedClaim `json:"claims"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		items = wrapped.Claims
	}

	out := make(claimList, 0, len(items))
	for _, c := range items {
		out = append(out, model.ExtractedClaim{
			Claim:      c.Claim,
			Subject:    c.Subject,
			Type:       model.ClaimType(c.Type),
			Verifiable: bool(c.Verifiable),
		})
	}
	*l = out
	return nil
}

func numberPtr(n llm.Number) *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
