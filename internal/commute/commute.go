// Package commute fills in travel distance and time for the final result
// page using the Google Distance Matrix API.
package commute

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/types"
)

// maxDestinationsPerCall is the Distance Matrix per-request limit.
const maxDestinationsPerCall = 25

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// Augmenter calls the Distance Matrix API. With an empty API key it is
// disabled and leaves every job untouched.
type Augmenter struct {
	APIKey  string
	BaseURL string
	Fetch   *fetch.Options
}

// NewAugmenter builds an Augmenter for the given API key.
func NewAugmenter(apiKey string) *Augmenter {
	return &Augmenter{APIKey: apiKey, BaseURL: defaultBaseURL}
}

// Enabled reports whether an API key is configured.
func (a *Augmenter) Enabled() bool {
	return a != nil && a.APIKey != ""
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Meters int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Seconds int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Augment fills commute fields on jobs in place. Runs only on the final,
// already-truncated page. Per-destination failures leave that job's
// commute fields nil; a whole-call failure is logged and skipped.
func (a *Augmenter) Augment(ctx context.Context, jobs []types.MatchedJob, origin, mode string) {
	if !a.Enabled() || origin == "" || len(jobs) == 0 {
		return
	}
	if mode == "" {
		mode = "transit"
	}

	for start := 0; start < len(jobs); start += maxDestinationsPerCall {
		end := start + maxDestinationsPerCall
		if end > len(jobs) {
			end = len(jobs)
		}
		if err := a.augmentBatch(ctx, jobs[start:end], origin, mode); err != nil {
			log.Printf("commute: batch failed: %v", err)
		}
	}
}

func (a *Augmenter) augmentBatch(ctx context.Context, jobs []types.MatchedJob, origin, mode string) error {
	destinations := make([]string, len(jobs))
	for i := range jobs {
		destinations[i] = destination(&jobs[i])
	}

	params := url.Values{}
	// The origin is a bare NL city or address; anchor it the same way
	// destinations are anchored so it cannot geocode abroad.
	params.Set("origins", origin+", Netherlands")
	params.Set("destinations", strings.Join(destinations, "|"))
	params.Set("mode", mode)
	params.Set("key", a.APIKey)

	var resp matrixResponse
	if err := fetch.JSON(ctx, a.BaseURL+"?"+params.Encode(), a.Fetch, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return fmt.Errorf("distance matrix status %q", resp.Status)
	}
	if len(resp.Rows) == 0 {
		return fmt.Errorf("distance matrix returned no rows")
	}

	elements := resp.Rows[0].Elements
	for i := range jobs {
		if i >= len(elements) || elements[i].Status != "OK" {
			continue
		}
		km := math.Round(float64(elements[i].Distance.Meters)/1000*10) / 10
		min := elements[i].Duration.Seconds / 60
		jobs[i].CommuteKm = &km
		jobs[i].CommuteMin = &min
	}
	return nil
}

// destination prefers exact coordinates and falls back to the city name.
func destination(job *types.MatchedJob) string {
	if job.Lat != nil && job.Lng != nil {
		return fmt.Sprintf("%f,%f", *job.Lat, *job.Lng)
	}
	if job.City != "" {
		return job.City + ", Netherlands"
	}
	return "Netherlands"
}
