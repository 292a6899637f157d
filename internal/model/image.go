package model

// VisionAnalysis is the AI reading of an image
type VisionAnalysis struct {
	ExtractedText        string   `json:"extracted_text"`
	ImageType            string   `json:"image_type"` // photo, screenshot, meme, infographic, ...
	ManipulationDetected bool     `json:"manipulation_detected"`
	ManipulationSigns    []string `json:"manipulation_signs"`
	Claims               []string `json:"claims"`
	CredibilityScore     float64  `json:"credibility_score"` // 0-100, 50 when unavailable
	RedFlags             []string `json:"red_flags"`
	Reasoning            string   `json:"reasoning"`
}

// MetadataRecord is what the embedded EXIF block says about an image
type MetadataRecord struct {
	HasMetadata bool     `json:"has_metadata"`
	CameraMake  string   `json:"camera_make,omitempty"`
	CameraModel string   `json:"camera_model,omitempty"`
	DateTime    string   `json:"datetime,omitempty"`
	Software    string   `json:"software,omitempty"`
	Edited      bool     `json:"edited"`     // Software tag present
	GPSLocation string   `json:"gps_location,omitempty"` // "Present" when GPS tags exist
	RedFlags    []string `json:"red_flags,omitempty"`
}

// ImageMatch is one page on which a reverse image search found the image
type ImageMatch struct {
	Title    string `json:"title"`
	Source   string `json:"source"`
	Link     string `json:"link"`
	Date     string `json:"date,omitempty"`
	Credible bool   `json:"credible"`
}

// ReverseSearchResult summarizes the reverse image search for one image
type ReverseSearchResult struct {
	MatchesFound    int          `json:"matches_found"`
	Sources         []ImageMatch `json:"sources,omitempty"`
	CredibleSources []ImageMatch `json:"credible_sources,omitempty"`
	EarliestDate    string       `json:"earliest_appearance,omitempty"`
	RelatedContexts []string     `json:"related_contexts,omitempty"`
	RedFlags        []string     `json:"red_flags,omitempty"`
	Error           string       `json:"error,omitempty"`
}
