package model

// ClaimType categorizes an extracted claim
type ClaimType string

const (
	ClaimTypeFact      ClaimType = "fact"      // Checkable statement of fact
	ClaimTypeStatistic ClaimType = "statistic" // Numbers, percentages, counts
	ClaimTypeEvent     ClaimType = "event"     // Something that happened
	ClaimTypeQuote     ClaimType = "quote"     // Attributed statement
)

// ExtractedClaim is one discrete claim pulled out of a longer input text
type ExtractedClaim struct {
	Claim      string    `json:"claim"`      // The claim text itself
	Subject    string    `json:"subject"`    // Main entity or topic
	Type       ClaimType `json:"type"`       // fact, statistic, event, quote
	Verifiable bool      `json:"verifiable"` // Whether the claim can be checked at all
}

// Query returns the search query used to corroborate the claim
func (c ExtractedClaim) Query() string {
	if c.Subject == "" {
		return c.Claim
	}
	if c.Type == "" {
		return c.Subject
	}
	return c.Subject + " " + string(c.Type)
}

// ClaimVerification is the per-claim judgment of the multi-claim pipeline
type ClaimVerification struct {
	Claim           string            `json:"claim"`
	Verdict         Label             `json:"verdict"`    // TRUE, FALSE, UNCERTAIN or ERROR
	Confidence      float64           `json:"confidence"` // 0-100
	Reasoning       string            `json:"reasoning"`
	CredibleSources []string          `json:"credible_sources,omitempty"`
	RedFlags        []string          `json:"red_flags,omitempty"`
	FactChecks      []FactCheckReview `json:"fact_checks,omitempty"`
}

// FactCheckReview is one review of a claim published by a fact-checking organisation
type FactCheckReview struct {
	Claim     string `json:"claim"`
	Claimant  string `json:"claimant,omitempty"`
	Rating    string `json:"rating"`    // Textual rating, e.g. "False", "Mostly true"
	Publisher string `json:"publisher"` // Publishing organisation
	URL       string `json:"url,omitempty"`
}
