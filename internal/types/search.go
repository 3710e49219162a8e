package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultTopN is applied when a request does not specify a page size.
const DefaultTopN = 25

// SearchRequest is the synchronous search call: free-text keywords plus
// filters, an optional candidate profile for match scoring, and an
// optional commute origin for the final page.
type SearchRequest struct {
	Keywords         string            `json:"keywords"`
	Country          string            `json:"country,omitempty"`
	City             string            `json:"city,omitempty"`
	WorkModes        []string          `json:"workModes,omitempty" validate:"dive,oneof=Remote Hybrid On-site"`
	EmploymentTypes  []string          `json:"employmentTypes,omitempty"`
	MinSalary        int               `json:"minSalary,omitempty" validate:"gte=0"`
	PostedWithin     string            `json:"postedWithin,omitempty" validate:"omitempty,oneof=24h 7d 30d"`
	CandidateProfile *CandidateProfile `json:"candidateProfile,omitempty"`
	MatchThreshold   int               `json:"matchThreshold,omitempty" validate:"gte=0,lte=100"`
	StrictMode       bool              `json:"strictMode,omitempty"`
	IndSponsorOnly   bool              `json:"indSponsorOnly,omitempty"`
	TopN             int               `json:"topN,omitempty" validate:"gte=0,lte=100"`
	DataSourceFilter []string          `json:"dataSourceFilter,omitempty"`
	CommuteOrigin    string            `json:"commuteOrigin,omitempty"`
	CommuteMode      string            `json:"commuteMode,omitempty" validate:"omitempty,oneof=driving transit bicycling"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ApplyDefaults fills in defaults for unset fields.
func (r *SearchRequest) ApplyDefaults() {
	if r.TopN <= 0 {
		r.TopN = DefaultTopN
	}
	if r.CommuteMode == "" {
		r.CommuteMode = "transit"
	}
}

// EnrichmentSummary reports how the deduplicated result set was covered
// by cache hits and fresh model calls.
type EnrichmentSummary struct {
	Total    int `json:"total"`
	Enriched int `json:"enriched"`
	Cached   int `json:"cached"`
	Pending  int `json:"pending"`
	Failed   int `json:"failed"`
}

// SearchResponse is the search result envelope: ranked jobs, raw per-source
// counts (before deduplication), and the enrichment summary.
type SearchResponse struct {
	Jobs       []MatchedJob      `json:"jobs"`
	Sources    map[string]int    `json:"sources"`
	Enrichment EnrichmentSummary `json:"enrichment_summary"`
}
