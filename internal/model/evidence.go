package model

// EvidenceItem is one raw search hit or image match
type EvidenceItem struct {
	Title   string       `json:"title"`
	Snippet string       `json:"snippet"`
	Link    string       `json:"link"`
	Domain  string       `json:"domain,omitempty"` // Normalized host of Link
	Kind    EvidenceKind `json:"kind"`
	Source  string       `json:"source,omitempty"` // "Knowledge Graph" or the result source name
	Date    string       `json:"date,omitempty"`   // Date string as reported upstream
}

// EvidenceKind classifies where an evidence item came from
type EvidenceKind string

const (
	EvidenceKindOrganic        EvidenceKind = "organic"         // Ranked web search hit
	EvidenceKindKnowledgeGraph EvidenceKind = "knowledge-graph" // Structured search entity
	EvidenceKindImageMatch     EvidenceKind = "image-match"     // Reverse image search hit
)

// Article is the main textual content scraped from a page
type Article struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HasContent reports whether any body text was extracted
func (a Article) HasContent() bool {
	return a.Content != ""
}

// Category is the trust category of a domain
type Category string

const (
	CategoryCredible   Category = "credible"
	CategoryModerate   Category = "moderate"
	CategoryUnreliable Category = "unreliable"
	CategoryUnknown    Category = "unknown"
)

// ParseCategory maps free text onto a known category
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryCredible, CategoryModerate, CategoryUnreliable:
		return Category(s)
	default:
		return CategoryUnknown
	}
}

// AssessedBy records which mechanism produced a domain score
type AssessedBy string

const (
	AssessedByStaticTable AssessedBy = "static-table"
	AssessedByAI          AssessedBy = "ai"
)

// DomainScore is the trust judgment for one web domain
type DomainScore struct {
	Domain     string     `json:"domain"`
	Score      int        `json:"score"` // 0-100
	Category   Category   `json:"category"`
	AssessedBy AssessedBy `json:"assessed_by"`
	Reasoning  string     `json:"reasoning"`
	RedFlags   []string   `json:"red_flags,omitempty"`
	Strengths  []string   `json:"strengths,omitempty"`
}

// SourceAnalysis summarizes the domain scores of a set of search hits
type SourceAnalysis struct {
	AverageCredibility float64       `json:"average_credibility"`
	CredibleCount      int           `json:"credible_count"`    // score >= 80
	UnreliableCount    int           `json:"unreliable_count"`  // score < 40
	AIAssessedCount    int           `json:"ai_assessed_count"`
	Domains            []DomainScore `json:"domains,omitempty"`
}
