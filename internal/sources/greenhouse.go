package sources

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/types"
)

const greenhouseDefaultBaseURL = "https://boards-api.greenhouse.io/v1"

// greenhouseMaxPerBoard caps how many listings a single board contributes.
const greenhouseMaxPerBoard = 10

// greenhouseBoardConcurrency bounds the per-board fan-out.
const greenhouseBoardConcurrency = 8

// DefaultGreenhouseBoards lists NL tech companies hosting on Greenhouse.
var DefaultGreenhouseBoards = []string{
	"booking", "adyen", "elastic", "messagebird", "mollie",
	"takeaway", "picnic", "bunq", "coolblue", "rituals",
	"tomtom", "leaseweb", "backbase", "lightspeedhq", "wetransfer",
	"mymedia", "catawiki", "sendcloud", "sytac", "yoursurprise",
	"viber", "happeo", "polarsteps", "meatable", "abn",
	"studocu", "fabric", "optiver", "flowtraders", "imctrading",
}

// Greenhouse fetches company-direct listings from the public Greenhouse
// board API, fanning out over a fixed set of boards. A failing board is
// skipped; the adapter itself only fails if it cannot run at all.
type Greenhouse struct {
	Boards  []string
	BaseURL string
}

// NewGreenhouse creates the Greenhouse adapter over the default boards.
func NewGreenhouse() *Greenhouse {
	return &Greenhouse{
		Boards:  DefaultGreenhouseBoards,
		BaseURL: greenhouseDefaultBaseURL,
	}
}

// Name implements Adapter.
func (g *Greenhouse) Name() string { return "greenhouse" }

// Enabled implements Adapter. The board API is public.
func (g *Greenhouse) Enabled() bool { return true }

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

type greenhouseJob struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
	Content   string `json:"content"`
	URL       string `json:"absolute_url"`
	Location  struct {
		Name string `json:"name"`
	} `json:"location"`
}

// Fetch implements Adapter.
func (g *Greenhouse) Fetch(ctx context.Context, q Query) ([]types.RawListing, error) {
	results := make([][]types.RawListing, len(g.Boards))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(greenhouseBoardConcurrency)
	for i, board := range g.Boards {
		i, board := i, board
		eg.Go(func() error {
			listings := g.fetchBoard(egCtx, board, q)
			mu.Lock()
			results[i] = listings
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait() // board failures are swallowed per-board

	var all []types.RawListing
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// fetchBoard fetches one board; any failure yields an empty slice.
func (g *Greenhouse) fetchBoard(ctx context.Context, board string, q Query) []types.RawListing {
	url := fmt.Sprintf("%s/boards/%s/jobs?content=true", g.BaseURL, board)
	var resp greenhouseResponse
	if err := fetch.JSON(ctx, url, nil, &resp); err != nil {
		return nil
	}

	company := capitalize(board)
	var listings []types.RawListing
	for _, j := range resp.Jobs {
		if len(listings) >= greenhouseMaxPerBoard {
			break
		}
		if !InNetherlands(j.Location.Name) {
			continue
		}
		if !MatchesKeyword(q.Keywords, j.Title, j.Content) {
			continue
		}

		id := strconv.FormatInt(j.ID, 10)
		description := TruncateDescription(j.Content)
		listings = append(listings, types.RawListing{
			Source:         "greenhouse",
			SourceJobID:    id,
			JobID:          "gh-" + id,
			Title:          orUnknown(j.Title),
			CompanyName:    company,
			City:           FirstSegment(j.Location.Name),
			Country:        "Netherlands",
			Description:    description,
			DescriptionLen: len(description),
			PostedDate:     isoDate(j.UpdatedAt),
			SalaryCurrency: "EUR",
			URL:            j.URL,
			ApplyURL:       j.URL,
		})
	}
	return listings
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
