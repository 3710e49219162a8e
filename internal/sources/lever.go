package sources

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/types"
)

const leverDefaultBaseURL = "https://api.lever.co/v0/postings"

// leverMaxPerBoard caps how many listings a single board contributes.
const leverMaxPerBoard = 10

// leverBoardConcurrency bounds the per-board fan-out.
const leverBoardConcurrency = 8

// DefaultLeverBoards lists companies with NL offices hosting on Lever.
var DefaultLeverBoards = []string{
	"trivago", "gorillas", "hellofresh", "miro",
	"personio", "contentful", "spendesk", "bynder",
	"talentio", "framer",
}

// Lever fetches company-direct listings from the public Lever postings
// API, fanning out over a fixed set of boards.
type Lever struct {
	Boards  []string
	BaseURL string
}

// NewLever creates the Lever adapter over the default boards.
func NewLever() *Lever {
	return &Lever{
		Boards:  DefaultLeverBoards,
		BaseURL: leverDefaultBaseURL,
	}
}

// Name implements Adapter.
func (l *Lever) Name() string { return "lever" }

// Enabled implements Adapter. The postings API is public.
func (l *Lever) Enabled() bool { return true }

type leverJob struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	CreatedAt        int64  `json:"createdAt"` // unix milliseconds
	HostedURL        string `json:"hostedUrl"`
	ApplyURL         string `json:"applyUrl"`
	DescriptionPlain string `json:"descriptionPlain"`
	WorkplaceType    string `json:"workplaceType"`
	Categories       struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
}

// Fetch implements Adapter.
func (l *Lever) Fetch(ctx context.Context, q Query) ([]types.RawListing, error) {
	results := make([][]types.RawListing, len(l.Boards))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(leverBoardConcurrency)
	for i, board := range l.Boards {
		i, board := i, board
		eg.Go(func() error {
			listings := l.fetchBoard(egCtx, board, q)
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

func (l *Lever) fetchBoard(ctx context.Context, board string, q Query) []types.RawListing {
	url := fmt.Sprintf("%s/%s?mode=json", l.BaseURL, board)
	var jobs []leverJob
	if err := fetch.JSON(ctx, url, nil, &jobs); err != nil {
		return nil
	}

	company := capitalize(board)
	var listings []types.RawListing
	for _, j := range jobs {
		if len(listings) >= leverMaxPerBoard {
			break
		}
		if !InNetherlands(j.Categories.Location) {
			continue
		}
		if !MatchesKeyword(q.Keywords, j.Text, j.DescriptionPlain) {
			continue
		}

		applyURL := j.ApplyURL
		if applyURL == "" {
			applyURL = j.HostedURL
		}

		description := TruncateDescription(j.DescriptionPlain)
		listings = append(listings, types.RawListing{
			Source:         "lever",
			SourceJobID:    j.ID,
			JobID:          "lv-" + j.ID,
			Title:          orUnknown(j.Text),
			CompanyName:    company,
			City:           leverCity(j.Categories.Location),
			Country:        "Netherlands",
			Description:    description,
			DescriptionLen: len(description),
			PostedDate:     millisDate(j.CreatedAt),
			SalaryCurrency: "EUR",
			URL:            j.HostedURL,
			ApplyURL:       applyURL,
			EmploymentType: j.Categories.Commitment,
			WorkMode:       leverWorkMode(j.WorkplaceType),
		})
	}
	return listings
}

// leverCity handles Lever's "City - Area, Country" location format.
func leverCity(location string) string {
	city := FirstSegment(location)
	city, _, _ = strings.Cut(city, "-")
	return strings.TrimSpace(city)
}

func leverWorkMode(workplaceType string) string {
	switch workplaceType {
	case "remote":
		return "Remote"
	case "onSite":
		return "On-site"
	case "hybrid":
		return "Hybrid"
	}
	return ""
}

func millisDate(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
