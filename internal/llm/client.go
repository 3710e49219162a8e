// Package llm wraps the Gemini client behind the batch extraction
// contract used by the enrichment pipeline.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/job-radar/internal/prompts"
	"github.com/jonathan/job-radar/internal/schemas"
	"github.com/jonathan/job-radar/internal/types"
)

// promptDescriptionLimit bounds how much of each description goes into
// the prompt; extraction quality plateaus well before full length.
const promptDescriptionLimit = 1500

// JobInput is one record submitted for extraction.
type JobInput struct {
	JobID       string
	Title       string
	Company     string
	Description string
}

// Extractor is an abstraction over the structured extraction provider.
type Extractor interface {
	// ExtractJobs submits a batch and returns extracted attributes
	// keyed by job_id. A job_id absent from the result is a partial
	// failure for that job only.
	ExtractJobs(ctx context.Context, jobs []JobInput) (map[string]types.EnrichedAttributes, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiExtractor implements Extractor for Google Gemini using function
// calling, so the model's output is a record set rather than free text.
type GeminiExtractor struct {
	client *genai.Client
	config *Config
}

// NewGeminiExtractor creates a new Gemini-backed extractor.
func NewGeminiExtractor(ctx context.Context, config *Config, apiKey string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		config: config,
	}, nil
}

// ExtractJobs implements Extractor.
func (c *GeminiExtractor) ExtractJobs(ctx context.Context, jobs []JobInput) (map[string]types.EnrichedAttributes, error) {
	if len(jobs) == 0 {
		return map[string]types.EnrichedAttributes{}, nil
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0) // extraction must be deterministic
	model.Tools = []*genai.Tool{
		{FunctionDeclarations: []*genai.FunctionDeclaration{enrichJobsDeclaration()}},
	}
	model.ToolConfig = &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{
			Mode:                 genai.FunctionCallingAny,
			AllowedFunctionNames: []string{enrichFunctionName},
		},
	}

	prompt := buildExtractionPrompt(jobs)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	call, err := extractFunctionCall(resp, enrichFunctionName)
	if err != nil {
		return nil, err
	}

	payloadJSON, err := json.Marshal(call.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal function call args: %w", err)
	}
	if err := schemas.ValidateEnrichedJobs(payloadJSON); err != nil {
		return nil, fmt.Errorf("model output failed schema validation: %w", err)
	}

	var payload enrichedJobsPayload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse function call args: %w", err)
	}

	extracted := make(map[string]types.EnrichedAttributes, len(payload.Jobs))
	for _, record := range payload.Jobs {
		if record.JobID == "" {
			continue
		}
		extracted[record.JobID] = record.EnrichedAttributes
	}
	return extracted, nil
}

// Close releases resources held by the client.
func (c *GeminiExtractor) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

type enrichedJobsPayload struct {
	Jobs []enrichedJobRecord `json:"jobs"`
}

type enrichedJobRecord struct {
	JobID string `json:"job_id"`
	types.EnrichedAttributes
}

// buildExtractionPrompt assembles the batch prompt: the fixed extraction
// instruction followed by one summary block per job.
func buildExtractionPrompt(jobs []JobInput) string {
	summaries := make([]string, len(jobs))
	for i, j := range jobs {
		description := truncateAtRune(j.Description, promptDescriptionLimit)
		summaries[i] = fmt.Sprintf("JOB_ID: %s\nTITLE: %s\nCOMPANY: %s\nDESCRIPTION: %s",
			j.JobID, j.Title, j.Company, description)
	}

	template := prompts.MustGet("enrichment.json", "extract-jobs")
	return prompts.Format(template, map[string]string{
		"Count":     fmt.Sprintf("%d", len(jobs)),
		"Summaries": strings.Join(summaries, "\n---\n"),
	})
}

// truncateAtRune bounds s to at most limit bytes, cutting on a rune
// boundary so the prompt never carries invalid UTF-8.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// extractFunctionCall finds the named function call in the response parts.
func extractFunctionCall(resp *genai.GenerateContentResponse, name string) (*genai.FunctionCall, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	for _, part := range candidate.Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok && call.Name == name {
			return &call, nil
		}
	}
	return nil, fmt.Errorf("no %s function call in response", name)
}
