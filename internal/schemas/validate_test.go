package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnrichedJobs_ValidDocument(t *testing.T) {
	doc := `{
		"jobs": [
			{
				"job_id": "adz-1",
				"hard_skills": ["Go", "SQL"],
				"seniority_level": "senior",
				"years_experience_min": 5,
				"visa_sponsorship_mentioned": "yes",
				"salary_min": null
			},
			{"job_id": "gh-2"}
		]
	}`
	assert.NoError(t, ValidateEnrichedJobs([]byte(doc)))
}

func TestValidateEnrichedJobs_MissingJobID(t *testing.T) {
	doc := `{"jobs": [{"hard_skills": ["Go"]}]}`
	err := ValidateEnrichedJobs([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateEnrichedJobs_BadVisaEnum(t *testing.T) {
	doc := `{"jobs": [{"job_id": "x", "visa_sponsorship_mentioned": "maybe"}]}`
	assert.Error(t, ValidateEnrichedJobs([]byte(doc)))
}

func TestValidateEnrichedJobs_WrongFieldType(t *testing.T) {
	doc := `{"jobs": [{"job_id": "x", "hard_skills": "Go"}]}`
	assert.Error(t, ValidateEnrichedJobs([]byte(doc)))
}

func TestValidateEnrichedJobs_MissingJobsArray(t *testing.T) {
	assert.Error(t, ValidateEnrichedJobs([]byte(`{}`)))
}

func TestValidateCandidateProfile_ValidDocument(t *testing.T) {
	doc := `{
		"hard_skills": ["Go", "SQL"],
		"software_tools": ["Docker"],
		"years_experience": 6,
		"education_level": "Master's",
		"languages": ["English", "Dutch"],
		"seniority": "Senior"
	}`
	assert.NoError(t, ValidateCandidateProfile([]byte(doc)))
}

func TestValidateCandidateProfile_MissingFields(t *testing.T) {
	err := ValidateCandidateProfile([]byte(`{"hard_skills": ["Go"]}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateCandidateProfile_BadSeniorityEnum(t *testing.T) {
	doc := `{
		"hard_skills": [],
		"software_tools": [],
		"years_experience": 2,
		"education_level": "Bachelor's",
		"languages": ["English"],
		"seniority": "intern"
	}`
	assert.Error(t, ValidateCandidateProfile([]byte(doc)))
}
