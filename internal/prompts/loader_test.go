package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExtractJobsPrompt(t *testing.T) {
	prompt, err := Get("enrichment.json", "extract-jobs")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Count}}")
	assert.Contains(t, prompt, "{{.Summaries}}")
	assert.Contains(t, prompt, "explicitly stated")
}

func TestGet_ExtractProfilePrompt(t *testing.T) {
	prompt, err := Get("profile.json", "extract-profile")
	require.NoError(t, err)
	assert.Contains(t, prompt, "CV/resume parser")
	assert.Contains(t, prompt, "years_experience")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("enrichment.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract-jobs")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Analyze {{.Count}} jobs:\n{{.Summaries}}", map[string]string{
		"Count":     "3",
		"Summaries": "JOB_ID: a",
	})
	assert.Equal(t, "Analyze 3 jobs:\nJOB_ID: a", out)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	out := Format("{{.Unknown}}", map[string]string{"Count": "1"})
	assert.Equal(t, "{{.Unknown}}", out)
}
