package sources

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/types"
)

const smartRecruitersDefaultBaseURL = "https://api.smartrecruiters.com/v1"

// smartRecruitersMaxPerCompany caps listings per company.
const smartRecruitersMaxPerCompany = 15

// smartRecruitersConcurrency bounds the per-company fan-out.
const smartRecruitersConcurrency = 8

// DefaultSmartRecruitersCompanies lists large NL employers exposing the
// public SmartRecruiters Posting API (no auth needed).
var DefaultSmartRecruitersCompanies = []string{
	"Shell", "Unilever", "Philips", "ING", "KPMG",
	"Deloitte", "Heineken", "AkzoNobel", "ASML", "NXPSemiconductors",
	"Wolters-Kluwer", "Randstad", "Aegon", "NN-Group",
}

// SmartRecruiters fetches company-direct postings from the public
// SmartRecruiters Posting API, fanning out over a fixed company set.
type SmartRecruiters struct {
	Companies []string
	BaseURL   string
}

// NewSmartRecruiters creates the adapter over the default company set.
func NewSmartRecruiters() *SmartRecruiters {
	return &SmartRecruiters{
		Companies: DefaultSmartRecruitersCompanies,
		BaseURL:   smartRecruitersDefaultBaseURL,
	}
}

// Name implements Adapter.
func (s *SmartRecruiters) Name() string { return "smartrecruiters" }

// Enabled implements Adapter. The Posting API is public.
func (s *SmartRecruiters) Enabled() bool { return true }

type smartRecruitersResponse struct {
	Content []smartRecruitersJob `json:"content"`
}

type smartRecruitersJob struct {
	ID           string `json:"id"`
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Ref          string `json:"ref"`
	ReleasedDate string `json:"releasedDate"`
	Location     struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Industry struct {
		Name string `json:"name"`
	} `json:"industry"`
	ExperienceLevel struct {
		Name string `json:"name"`
	} `json:"experienceLevel"`
	TypeOfEmployment struct {
		Name string `json:"name"`
	} `json:"typeOfEmployment"`
	JobAd struct {
		Sections struct {
			JobDescription struct {
				Text string `json:"text"`
			} `json:"jobDescription"`
		} `json:"sections"`
	} `json:"jobAd"`
}

// Fetch implements Adapter.
func (s *SmartRecruiters) Fetch(ctx context.Context, q Query) ([]types.RawListing, error) {
	results := make([][]types.RawListing, len(s.Companies))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(smartRecruitersConcurrency)
	for i, company := range s.Companies {
		i, company := i, company
		eg.Go(func() error {
			listings := s.fetchCompany(egCtx, company, q)
			mu.Lock()
			results[i] = listings
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	var all []types.RawListing
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

func (s *SmartRecruiters) fetchCompany(ctx context.Context, company string, q Query) []types.RawListing {
	url := fmt.Sprintf("%s/companies/%s/postings?limit=100", s.BaseURL, company)
	var resp smartRecruitersResponse
	if err := fetch.JSON(ctx, url, nil, &resp); err != nil {
		return nil
	}

	var listings []types.RawListing
	for _, j := range resp.Content {
		if len(listings) >= smartRecruitersMaxPerCompany {
			break
		}
		location := j.Location.City + " " + j.Location.Country
		if !InNetherlands(location) {
			continue
		}
		descriptionText := j.JobAd.Sections.JobDescription.Text
		if !MatchesKeyword(q.Keywords, j.Name, descriptionText) {
			continue
		}

		id := j.ID
		if id == "" {
			id = j.UUID
		}
		companyName := j.Company.Name
		if companyName == "" {
			companyName = company
		}

		description := TruncateDescription(descriptionText)
		listings = append(listings, types.RawListing{
			Source:         "smartrecruiters",
			SourceJobID:    id,
			JobID:          "sr-" + id,
			Title:          orUnknown(j.Name),
			CompanyName:    companyName,
			City:           j.Location.City,
			Country:        "Netherlands",
			Description:    description,
			DescriptionLen: len(description),
			PostedDate:     isoDate(j.ReleasedDate),
			SalaryCurrency: "EUR",
			URL:            j.Ref,
			ApplyURL:       j.Ref,
			SeniorityLevel: j.ExperienceLevel.Name,
			EmploymentType: j.TypeOfEmployment.Name,
			Industry:       j.Industry.Name,
		})
	}
	return listings
}
