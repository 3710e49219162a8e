package llm

import "github.com/google/generative-ai-go/genai"

// enrichFunctionName is the single function the model is allowed to call.
const enrichFunctionName = "enrich_jobs"

func stringArraySchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
}

// enrichJobsDeclaration describes the structured output contract: one
// record per job_id, every field optional except job_id, string arrays
// for lists and plain strings for categorical fields. The model is
// instructed separately to leave unstated fields empty.
func enrichJobsDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        enrichFunctionName,
		Description: "Return enriched data extracted only from job descriptions",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"jobs": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"job_id":                     {Type: genai.TypeString},
							"hard_skills":                stringArraySchema(),
							"software_tools":             stringArraySchema(),
							"cloud_platforms":            stringArraySchema(),
							"soft_skills":                stringArraySchema(),
							"required_languages":         stringArraySchema(),
							"language_level":             {Type: genai.TypeString},
							"seniority_level":            {Type: genai.TypeString},
							"employment_type":            {Type: genai.TypeString},
							"work_mode":                  {Type: genai.TypeString},
							"years_experience_min":       {Type: genai.TypeInteger},
							"education_level":            {Type: genai.TypeString},
							"visa_sponsorship_mentioned": {Type: genai.TypeString},
							"salary_min":                 {Type: genai.TypeInteger},
							"salary_max":                 {Type: genai.TypeInteger},
							"salary_period":              {Type: genai.TypeString},
							"pension":                    {Type: genai.TypeString},
							"health_insurance":           {Type: genai.TypeString},
							"learning_budget":            {Type: genai.TypeString},
							"transport_allowance":        {Type: genai.TypeString},
							"home_office_budget":         {Type: genai.TypeString},
							"extra_holidays":             {Type: genai.TypeString},
							"benefits_text_raw":          {Type: genai.TypeString},
						},
						Required: []string{"job_id"},
					},
				},
			},
			Required: []string{"jobs"},
		},
	}
}
