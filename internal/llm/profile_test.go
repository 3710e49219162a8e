package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF([]byte("plain text"), "resume.PDF"))
	assert.True(t, isPDF([]byte("%PDF-1.7 ..."), "upload"))
	assert.False(t, isPDF([]byte("Jane Doe, Senior Go Developer"), "cv.txt"))
}

func TestDecodeProfileCall(t *testing.T) {
	args := map[string]any{
		"hard_skills":      []any{"Go", "PostgreSQL"},
		"software_tools":   []any{"Docker"},
		"years_experience": float64(7),
		"education_level":  "Master's",
		"languages":        []any{"English", "Dutch"},
		"seniority":        "Senior",
	}

	profile, err := decodeProfileCall(args)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.HardSkills)
	assert.Equal(t, 7, profile.YearsExperience)
	assert.Equal(t, "Senior", profile.Seniority)
	assert.Equal(t, []string{"English", "Dutch"}, profile.Languages)
}

func TestDecodeProfileCall_RejectsIncompleteOutput(t *testing.T) {
	// seniority, languages and education_level are missing entirely.
	args := map[string]any{
		"hard_skills":      []any{"Go"},
		"software_tools":   []any{},
		"years_experience": float64(3),
	}

	_, err := decodeProfileCall(args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestDecodeProfileCall_RejectsUnknownSeniority(t *testing.T) {
	args := map[string]any{
		"hard_skills":      []any{"Go"},
		"software_tools":   []any{},
		"years_experience": float64(3),
		"education_level":  "Bachelor's",
		"languages":        []any{"English"},
		"seniority":        "Grandmaster",
	}

	_, err := decodeProfileCall(args)
	require.Error(t, err)
}
