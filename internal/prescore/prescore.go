// Package prescore selects the shortlist of listings worth the cost of
// AI enrichment using a cheap heuristic score. The point values are
// hand-tuned; treat them as configuration, not derived truth.
package prescore

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/job-radar/internal/types"
)

const (
	keywordInTitlePoints       = 40
	keywordInDescriptionPoints = 20
	salaryPresentPoints        = 10
	descriptionLengthPoints    = 10
	cityMatchPoints            = 10

	// minUsableDescription is the description length below which a
	// listing is unlikely to enrich into anything useful.
	minUsableDescription = 200

	// ShortlistCap bounds how many listings can ever enter enrichment
	// in a single request, regardless of topN.
	ShortlistCap = 100
)

// Score computes the heuristic pre-score for one listing.
func Score(l types.RawListing, keywords, city string, now time.Time) int {
	score := 0
	kw := strings.ToLower(strings.TrimSpace(keywords))

	if kw != "" {
		inTitle := strings.Contains(strings.ToLower(l.Title), kw)
		inDescription := strings.Contains(strings.ToLower(l.Description), kw)
		switch {
		case inTitle:
			score += keywordInTitlePoints
		case inDescription:
			score += keywordInDescriptionPoints
		}
	}

	if l.SalaryMin != nil || l.SalaryMax != nil {
		score += salaryPresentPoints
	}

	score += recencyBonus(l.PostedDate, now)

	if l.DescriptionLen >= minUsableDescription {
		score += descriptionLengthPoints
	}

	if city != "" && strings.EqualFold(l.City, city) {
		score += cityMatchPoints
	}

	return score
}

// recencyBonus rewards fresh postings on a decaying scale.
func recencyBonus(postedDate string, now time.Time) int {
	if postedDate == "" {
		return 0
	}
	posted, err := time.Parse("2006-01-02", postedDate)
	if err != nil {
		return 0
	}
	age := now.Sub(posted)
	switch {
	case age <= 3*24*time.Hour:
		return 15
	case age <= 7*24*time.Hour:
		return 10
	case age <= 14*24*time.Hour:
		return 5
	}
	return 0
}

// Shortlist sorts listings by descending pre-score and returns the top
// min(len(all), min(2×topN, ShortlistCap)). Listings outside the
// shortlist pass through the pipeline unenriched and are never promoted
// later within the same request.
func Shortlist(all []types.RawListing, keywords, city string, topN int, now time.Time) []types.RawListing {
	limit := 2 * topN
	if limit > ShortlistCap {
		limit = ShortlistCap
	}
	if limit > len(all) {
		limit = len(all)
	}

	scored := make([]types.RawListing, len(all))
	copy(scored, all)
	scores := make(map[string]int, len(scored))
	for _, l := range scored {
		scores[l.JobID] = Score(l, keywords, city, now)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scores[scored[i].JobID] > scores[scored[j].JobID]
	})

	return scored[:limit]
}
