package types

// Visa likelihood buckets derived from sponsor matching and stated signals.
const (
	VisaHigh   = "High"
	VisaMedium = "Medium"
	VisaLow    = "Low"
)

// SponsorMatch records how (and whether) a company matched the sponsor registry.
type SponsorMatch struct {
	IsMatch     bool   `json:"ind_registered_sponsor"`
	Method      string `json:"ind_match_method"` // exact, prefix, fuzzy, none
	MatchedName string `json:"ind_matched_name,omitempty"`
}

// MatchBreakdown holds the five weighted sub-scores behind the overall match score.
type MatchBreakdown struct {
	HardSkills int `json:"hard_skills"`
	Tools      int `json:"tools"`
	Seniority  int `json:"seniority"`
	Experience int `json:"experience"`
	Language   int `json:"language"`
}

// MatchedJob is the externally visible result unit: the raw listing plus
// enrichment, sponsor match, match scores, and (for the final page only)
// commute figures. It is assembled once per request and, after ranking,
// mutated only by the commute augmenter.
type MatchedJob struct {
	RawListing
	Enriched         EnrichedAttributes `json:"enriched"`
	EnrichmentStatus string             `json:"enrichment_status"`
	Sponsor          SponsorMatch       `json:"sponsor"`
	VisaLikelihood   string             `json:"visa_likelihood"`
	MatchScore       int                `json:"match_score_overall"`
	MatchDetail      MatchBreakdown     `json:"match_score_breakdown"`
	MatchedSkills    []string           `json:"matched_skills,omitempty"`
	MissingSkills    []string           `json:"missing_skills,omitempty"`
	CommuteKm        *float64           `json:"commute_distance_km,omitempty"`
	CommuteMin       *int               `json:"commute_time_min,omitempty"`
}

// EffectiveWorkMode prefers the AI-extracted work mode over the board's.
func (m *MatchedJob) EffectiveWorkMode() string {
	if m.Enriched.WorkMode != "" {
		return m.Enriched.WorkMode
	}
	return m.WorkMode
}

// EffectiveSalaryMax returns the best known salary ceiling, treating
// missing values as zero for ranking purposes.
func (m *MatchedJob) EffectiveSalaryMax() int {
	if m.Enriched.SalaryMax != nil {
		return *m.Enriched.SalaryMax
	}
	if m.SalaryMax != nil {
		return *m.SalaryMax
	}
	return 0
}
