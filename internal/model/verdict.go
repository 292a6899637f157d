package model

// Label is the verdict label of a verification
type Label string

const (
	LabelTrue        Label = "TRUE"
	LabelLikelyTrue  Label = "LIKELY TRUE"
	LabelMostlyTrue  Label = "MOSTLY TRUE"
	LabelUncertain   Label = "UNCERTAIN"
	LabelMixed       Label = "MIXED"
	LabelLikelyFalse Label = "LIKELY FALSE"
	LabelFalse       Label = "FALSE"
	LabelUnverified  Label = "UNVERIFIED"
	LabelError       Label = "ERROR"
)

// ParseLabel returns the label matching s, if any
func ParseLabel(s string) (Label, bool) {
	switch l := Label(s); l {
	case LabelTrue, LabelLikelyTrue, LabelMostlyTrue, LabelUncertain, LabelMixed,
		LabelLikelyFalse, LabelFalse, LabelUnverified, LabelError:
		return l, true
	}
	return "", false
}

// Color is the display tier of a verdict
type Color string

const (
	ColorGreen      Color = "green"
	ColorLightGreen Color = "lightgreen"
	ColorYellow     Color = "yellow"
	ColorOrange     Color = "orange"
	ColorRed        Color = "red"
	ColorGray       Color = "gray"
)

// Verdict is the final judgment returned for one verification request.
// The first block of fields is shared by every pipeline; the rest are
// pipeline specific and omitted when unset.
type Verdict struct {
	Verdict               Label    `json:"verdict"`
	CredibilityScore      int      `json:"credibility_score"` // 0-100
	Confidence            float64  `json:"confidence"`        // 0-100
	Color                 Color    `json:"color"`
	Reasoning             string   `json:"reasoning"`
	SupportingEvidence    []string `json:"supporting_evidence,omitempty"`
	ContradictingEvidence []string `json:"contradicting_evidence,omitempty"`
	RedFlags              []string `json:"red_flags,omitempty"` // Deduplicated
	Timestamp             string   `json:"timestamp,omitempty"` // RFC 3339

	// Text and URL
	CredibleSources []string        `json:"credible_sources_found,omitempty"`
	Recommendation  string          `json:"recommendation,omitempty"`
	SourceAnalysis  *SourceAnalysis `json:"source_analysis,omitempty"`
	SearchResults   *int            `json:"search_results_count,omitempty"`
	ArticlesRead    *int            `json:"articles_analyzed,omitempty"`

	// URL
	URL              string       `json:"url,omitempty"`
	Title            string       `json:"title,omitempty"`
	DomainInfo       *DomainScore `json:"domain_info,omitempty"`
	SourceAssessment string       `json:"source_assessment,omitempty"`
	ContentQuality   string       `json:"content_quality,omitempty"`
	Corroboration    string       `json:"corroboration,omitempty"`

	// Image
	Image *ImageDetails `json:"image,omitempty"`

	// Multi-claim
	TotalClaims int                 `json:"total_claims,omitempty"`
	Claims      []ClaimVerification `json:"claims,omitempty"`
}

// ImageDetails carries the image-specific parts of a verdict
type ImageDetails struct {
	ExtractedText        string              `json:"extracted_text"`
	ImageType            string              `json:"image_type"`
	Claims               []string            `json:"claims"`
	ManipulationDetected bool                `json:"manipulation_detected"`
	ManipulationSigns    []string            `json:"manipulation_signs"`
	Metadata             MetadataRecord      `json:"metadata"`
	ReverseSearch        ReverseSearchResult `json:"reverse_search"`
}

// IntPtr is a helper for the optional count fields of Verdict
func IntPtr(n int) *int {
	return &n
}
