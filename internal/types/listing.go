// Package types provides type definitions for structured data used throughout the job-radar system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RawListing is the canonical shape every source adapter normalizes into.
// It is immutable once produced; one listing per (source, source_job_id).
type RawListing struct {
	Source         string   `json:"source"`
	SourceJobID    string   `json:"source_job_id"`
	JobID          string   `json:"job_id"` // source-prefixed, stable across requests
	Title          string   `json:"job_title"`
	CompanyName    string   `json:"company_name"`
	City           string   `json:"city,omitempty"`
	Country        string   `json:"country,omitempty"`
	Description    string   `json:"job_description_raw,omitempty"`
	DescriptionLen int      `json:"description_char_count"`
	PostedDate     string   `json:"date_posted,omitempty"` // ISO date (YYYY-MM-DD)
	SalaryMin      *int     `json:"salary_min,omitempty"`
	SalaryMax      *int     `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`
	URL            string   `json:"job_url,omitempty"`
	ApplyURL       string   `json:"apply_url,omitempty"`
	Lat            *float64 `json:"work_lat,omitempty"`
	Lng            *float64 `json:"work_lng,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	SeniorityLevel string   `json:"seniority_level,omitempty"` // only when the board states it
	EmploymentType string   `json:"employment_type,omitempty"`
	WorkMode       string   `json:"work_mode,omitempty"`
}
