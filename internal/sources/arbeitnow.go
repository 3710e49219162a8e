package sources

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/types"
)

const arbeitnowDefaultBaseURL = "https://www.arbeitnow.com/api/job-board-api"

// arbeitnowMaxResults caps how many listings this free board contributes.
const arbeitnowMaxResults = 30

// Arbeitnow fetches from the free Arbeitnow job board API. No key is
// needed; keyword and region filtering happen client-side because the
// API supports neither.
type Arbeitnow struct {
	BaseURL string
}

// NewArbeitnow creates the Arbeitnow adapter.
func NewArbeitnow() *Arbeitnow {
	return &Arbeitnow{BaseURL: arbeitnowDefaultBaseURL}
}

// Name implements Adapter.
func (a *Arbeitnow) Name() string { return "arbeitnow" }

// Enabled implements Adapter. Arbeitnow needs no credentials.
func (a *Arbeitnow) Enabled() bool { return true }

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	CreatedAt   int64    `json:"created_at"` // unix seconds
	Description string   `json:"description"`
}

// Fetch implements Adapter.
func (a *Arbeitnow) Fetch(ctx context.Context, q Query) ([]types.RawListing, error) {
	var resp arbeitnowResponse
	if err := fetch.JSON(ctx, a.BaseURL, nil, &resp); err != nil {
		return nil, err
	}

	var listings []types.RawListing
	for _, j := range resp.Data {
		if len(listings) >= arbeitnowMaxResults {
			break
		}
		if !InNetherlands(j.Location) {
			continue
		}
		if !MatchesKeyword(q.Keywords, append([]string{j.Title, j.Description, j.CompanyName}, j.Tags...)...) {
			continue
		}

		slug := j.Slug
		if slug == "" {
			slug = uuid.NewString()
		}

		description := TruncateDescription(j.Description)
		listings = append(listings, types.RawListing{
			Source:         "arbeitnow",
			SourceJobID:    slug,
			JobID:          "arb-" + slug,
			Title:          orUnknown(j.Title),
			CompanyName:    orUnknown(j.CompanyName),
			City:           FirstSegment(j.Location),
			Country:        "Netherlands",
			Description:    description,
			DescriptionLen: len(description),
			PostedDate:     unixDate(j.CreatedAt),
			SalaryCurrency: "EUR",
			URL:            j.URL,
			ApplyURL:       j.URL,
			EmploymentType: arbeitnowEmploymentType(j.JobTypes),
			WorkMode:       arbeitnowWorkMode(j.Remote),
		})
	}
	return listings, nil
}

func arbeitnowEmploymentType(jobTypes []string) string {
	for _, t := range jobTypes {
		switch t {
		case "full_time":
			return "Full-time"
		case "part_time":
			return "Part-time"
		}
	}
	return ""
}

func arbeitnowWorkMode(remote bool) string {
	if remote {
		return "Remote"
	}
	return ""
}

func unixDate(sec int64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format("2006-01-02")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
