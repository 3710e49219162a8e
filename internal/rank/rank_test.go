package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-radar/internal/types"
)

func intPtr(v int) *int { return &v }

func TestFilter_WorkModes(t *testing.T) {
	jobs := []types.MatchedJob{
		{RawListing: types.RawListing{JobID: "a", WorkMode: "Remote"}},
		{RawListing: types.RawListing{JobID: "b", WorkMode: "On-site"}},
		{
			RawListing: types.RawListing{JobID: "c", WorkMode: "On-site"},
			Enriched:   types.EnrichedAttributes{WorkMode: "Hybrid"},
		},
	}
	req := &types.SearchRequest{WorkModes: []string{"Remote", "Hybrid"}}

	filtered := Filter(jobs, req)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].JobID)
	assert.Equal(t, "c", filtered[1].JobID, "enriched work mode overrides the board's")
}

func TestFilter_SponsorOnly(t *testing.T) {
	jobs := []types.MatchedJob{
		{RawListing: types.RawListing{JobID: "a"}, Sponsor: types.SponsorMatch{IsMatch: true}},
		{RawListing: types.RawListing{JobID: "b"}},
	}
	req := &types.SearchRequest{IndSponsorOnly: true}

	filtered := Filter(jobs, req)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].JobID)
}

func TestFilter_ThresholdNeedsProfile(t *testing.T) {
	jobs := []types.MatchedJob{
		{RawListing: types.RawListing{JobID: "low"}, MatchScore: 10},
		{RawListing: types.RawListing{JobID: "high"}, MatchScore: 90},
	}

	// Without a profile the threshold must not filter anything; every
	// score is zero in that case and the floor would empty the result.
	noProfile := &types.SearchRequest{MatchThreshold: 50}
	assert.Len(t, Filter(jobs, noProfile), 2)

	withProfile := &types.SearchRequest{
		MatchThreshold:   50,
		CandidateProfile: &types.CandidateProfile{},
	}
	filtered := Filter(jobs, withProfile)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "high", filtered[0].JobID)
}

func TestFilter_EmploymentTypes(t *testing.T) {
	jobs := []types.MatchedJob{
		{RawListing: types.RawListing{JobID: "a", EmploymentType: "Full-time"}},
		{RawListing: types.RawListing{JobID: "b", EmploymentType: "Internship"}},
	}
	req := &types.SearchRequest{EmploymentTypes: []string{"Full-time"}}

	filtered := Filter(jobs, req)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].JobID)
}

func TestSort_MultiKey(t *testing.T) {
	jobs := []types.MatchedJob{
		{RawListing: types.RawListing{JobID: "old-rich", PostedDate: "2025-05-01", SalaryMax: intPtr(90000)}, MatchScore: 80},
		{RawListing: types.RawListing{JobID: "top"}, MatchScore: 95},
		{RawListing: types.RawListing{JobID: "new", PostedDate: "2025-06-01"}, MatchScore: 80},
		{RawListing: types.RawListing{JobID: "old-poor", PostedDate: "2025-05-01"}, MatchScore: 80},
	}

	Sort(jobs)
	order := []string{jobs[0].JobID, jobs[1].JobID, jobs[2].JobID, jobs[3].JobID}
	assert.Equal(t, []string{"top", "new", "old-rich", "old-poor"}, order)
}

func TestTop_Truncates(t *testing.T) {
	jobs := make([]types.MatchedJob, 10)
	assert.Len(t, Top(jobs, 3), 3)
	assert.Len(t, Top(jobs, 25), 10)
	assert.Len(t, Top(jobs, 0), 10)
}
