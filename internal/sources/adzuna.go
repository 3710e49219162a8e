package sources

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/types"
)

const adzunaDefaultBaseURL = "https://api.adzuna.com/v1/api/jobs/nl/search/1"

// Adzuna fetches from the Adzuna aggregator API. It requires an app ID
// and key; without them the adapter is constructed disabled.
type Adzuna struct {
	appID   string
	appKey  string
	BaseURL string
}

// NewAdzuna creates the Adzuna adapter. Empty credentials disable it.
func NewAdzuna(appID, appKey string) *Adzuna {
	return &Adzuna{
		appID:   appID,
		appKey:  appKey,
		BaseURL: adzunaDefaultBaseURL,
	}
}

// Name implements Adapter.
func (a *Adzuna) Name() string { return "adzuna" }

// Enabled implements Adapter.
func (a *Adzuna) Enabled() bool { return a.appID != "" && a.appKey != "" }

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirect_url"`
	Created     string   `json:"created"`
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Location    struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
}

// Fetch implements Adapter. Adzuna supports keyword, city, salary and
// recency filters natively, so no client-side filtering is needed.
func (a *Adzuna) Fetch(ctx context.Context, q Query) ([]types.RawListing, error) {
	if !a.Enabled() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", "50")
	params.Set("content-type", "application/json")
	if q.Keywords != "" {
		params.Set("what", q.Keywords)
	}
	if q.City != "" {
		params.Set("where", q.City)
	}
	if q.MinSalary > 0 {
		params.Set("salary_min", fmt.Sprintf("%d", q.MinSalary))
	}
	switch q.PostedWithin {
	case "24h":
		params.Set("max_days_old", "1")
	case "7d":
		params.Set("max_days_old", "7")
	case "30d":
		params.Set("max_days_old", "30")
	}

	var resp adzunaResponse
	if err := fetch.JSON(ctx, a.BaseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	listings := make([]types.RawListing, 0, len(resp.Results))
	for _, j := range resp.Results {
		title := strings.TrimSpace(StripHTML(j.Title))
		if title == "" {
			title = "Unknown"
		}
		company := j.Company.DisplayName
		if company == "" {
			company = "Unknown"
		}

		description := TruncateDescription(j.Description)
		listings = append(listings, types.RawListing{
			Source:         "adzuna",
			SourceJobID:    j.ID,
			JobID:          "adz-" + j.ID,
			Title:          title,
			CompanyName:    company,
			City:           FirstSegment(j.Location.DisplayName),
			Country:        "Netherlands",
			Description:    description,
			DescriptionLen: len(description),
			PostedDate:     isoDate(j.Created),
			SalaryMin:      roundSalary(j.SalaryMin),
			SalaryMax:      roundSalary(j.SalaryMax),
			SalaryCurrency: "EUR",
			URL:            j.RedirectURL,
			ApplyURL:       j.RedirectURL,
			Lat:            j.Latitude,
			Lng:            j.Longitude,
			Industry:       j.Category.Label,
		})
	}
	return listings, nil
}

// isoDate reduces an ISO timestamp to its date part.
func isoDate(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}

func roundSalary(v *float64) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	r := int(math.Round(*v))
	return &r
}
