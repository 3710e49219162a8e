package types

// CandidateProfile describes the searching candidate. It is supplied per
// request and never persisted by the pipeline.
type CandidateProfile struct {
	HardSkills      []string `json:"hard_skills"`
	SoftwareTools   []string `json:"software_tools"`
	YearsExperience int      `json:"years_experience"`
	Seniority       string   `json:"seniority"`
	Languages       []string `json:"languages"`
	EducationLevel  string   `json:"education_level"`
}

// SponsorRecord is one row of the visa-sponsor registry.
type SponsorRecord struct {
	CompanyName           string `json:"company_name"`
	CompanyNameNormalized string `json:"company_name_normalized"`
}
