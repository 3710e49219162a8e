package types

import "time"

// Enrichment status values stored in the cache and reported per job.
const (
	EnrichmentPending = "pending"
	EnrichmentDone    = "done"
	EnrichmentFailed  = "failed"
)

// EnrichedAttributes holds the AI-extracted structured fields for a job
// listing. Every field is optional: the extraction contract forbids the
// model from inferring anything not explicitly stated, so an absent field
// stays null/empty and must never be synthesized downstream.
type EnrichedAttributes struct {
	HardSkills               []string `json:"hard_skills,omitempty"`
	SoftwareTools            []string `json:"software_tools,omitempty"`
	CloudPlatforms           []string `json:"cloud_platforms,omitempty"`
	SoftSkills               []string `json:"soft_skills,omitempty"`
	RequiredLanguages        []string `json:"required_languages,omitempty"`
	LanguageLevel            string   `json:"language_level,omitempty"`
	SeniorityLevel           string   `json:"seniority_level,omitempty"`
	EmploymentType           string   `json:"employment_type,omitempty"`
	WorkMode                 string   `json:"work_mode,omitempty"`
	YearsExperienceMin       *int     `json:"years_experience_min,omitempty"`
	EducationLevel           string   `json:"education_level,omitempty"`
	VisaSponsorshipMentioned string   `json:"visa_sponsorship_mentioned,omitempty"` // yes, no, unclear
	SalaryMin                *int     `json:"salary_min,omitempty"`
	SalaryMax                *int     `json:"salary_max,omitempty"`
	SalaryPeriod             string   `json:"salary_period,omitempty"`
	Pension                  string   `json:"pension,omitempty"`
	HealthInsurance          string   `json:"health_insurance,omitempty"`
	LearningBudget           string   `json:"learning_budget,omitempty"`
	TransportAllowance       string   `json:"transport_allowance,omitempty"`
	HomeOfficeBudget         string   `json:"home_office_budget,omitempty"`
	ExtraHolidays            string   `json:"extra_holidays,omitempty"`
	BenefitsTextRaw          string   `json:"benefits_text_raw,omitempty"`
}

// IsZero reports whether no attribute was extracted at all.
func (e *EnrichedAttributes) IsZero() bool {
	return e == nil || (len(e.HardSkills) == 0 && len(e.SoftwareTools) == 0 &&
		len(e.CloudPlatforms) == 0 && len(e.SoftSkills) == 0 &&
		len(e.RequiredLanguages) == 0 && e.SeniorityLevel == "" &&
		e.EmploymentType == "" && e.WorkMode == "" &&
		e.YearsExperienceMin == nil && e.EducationLevel == "" &&
		e.VisaSponsorshipMentioned == "")
}

// CacheEntry is one row of the enrichment cache, keyed by job_id.
// DescriptionHash is the content hash of the description text at
// enrichment time; a mismatch against the current listing text demotes
// the entry to a miss so changed listings are always re-enriched.
type CacheEntry struct {
	JobID            string             `json:"job_id"`
	Attributes       EnrichedAttributes `json:"attributes"`
	DescriptionHash  string             `json:"description_hash"`
	EnrichmentStatus string             `json:"enrichment_status"` // pending, done, failed
	EnrichedAt       time.Time          `json:"enriched_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
