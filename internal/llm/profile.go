package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/jonathan/job-radar/internal/prompts"
	"github.com/jonathan/job-radar/internal/schemas"
	"github.com/jonathan/job-radar/internal/types"
)

// profileFunctionName is the single function the model may call when
// parsing a CV.
const profileFunctionName = "extract_profile"

// profileTemperature is slightly above zero: CV parsing benefits from a
// little flexibility when inferring skills from job context.
const profileTemperature = 0.2

var pdfMagic = []byte("%PDF")

// ExtractProfile parses a CV file into a candidate profile. PDF files go
// to the model as inline binary data; anything else is treated as plain
// text.
func (c *GeminiExtractor) ExtractProfile(ctx context.Context, file []byte, fileName string) (*types.CandidateProfile, error) {
	if len(file) == 0 {
		return nil, fmt.Errorf("empty CV file")
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(profileTemperature)
	model.Tools = []*genai.Tool{
		{FunctionDeclarations: []*genai.FunctionDeclaration{extractProfileDeclaration()}},
	}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{profileFunctionName},
		},
	}

	var parts []genai.Part
	if isPDF(file, fileName) {
		parts = append(parts, genai.Blob{MIMEType: "application/pdf", Data: file})
	} else {
		parts = append(parts, genai.Text(string(file)))
	}
	parts = append(parts, genai.Text(prompts.MustGet("profile.json", "extract-profile")))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	call, err := extractFunctionCall(resp, profileFunctionName)
	if err != nil {
		return nil, err
	}
	return decodeProfileCall(call.Args)
}

// decodeProfileCall validates the model's function call arguments and
// maps them onto a candidate profile.
func decodeProfileCall(args map[string]any) (*types.CandidateProfile, error) {
	payloadJSON, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal function call args: %w", err)
	}
	if err := schemas.ValidateCandidateProfile(payloadJSON); err != nil {
		return nil, fmt.Errorf("model output failed schema validation: %w", err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(payloadJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse function call args: %w", err)
	}
	return &profile, nil
}

// isPDF sniffs the file type from the name suffix or the magic bytes.
func isPDF(file []byte, fileName string) bool {
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return true
	}
	return bytes.HasPrefix(file, pdfMagic)
}

func extractProfileDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        profileFunctionName,
		Description: "Extract structured candidate profile from a CV. Only include explicitly mentioned information.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"hard_skills": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "Technical/hard skills explicitly mentioned (e.g. React, Python, SQL)",
				},
				"software_tools": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "Software tools and platforms explicitly mentioned (e.g. Docker, AWS, Jira)",
				},
				"years_experience": {
					Type:        genai.TypeInteger,
					Description: "Total years of professional experience calculated from employment dates",
				},
				"education_level": {
					Type:        genai.TypeString,
					Description: "Highest education level explicitly mentioned (e.g. Bachelor's, Master's, PhD)",
				},
				"languages": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "Spoken languages explicitly mentioned",
				},
				"seniority": {
					Type:        genai.TypeString,
					Description: "Seniority level based on job titles: Junior, Mid, Senior, Lead, or Manager",
				},
			},
			Required: []string{"hard_skills", "software_tools", "years_experience", "education_level", "languages", "seniority"},
		},
	}
}
