// Package rank applies the post-scoring filters and the final ordering.
package rank

import (
	"sort"

	"github.com/jonathan/job-radar/internal/types"
)

// Filter applies the request's result filters. The match-threshold floor
// only applies when a candidate profile was supplied, since scores are
// all zero without one.
func Filter(jobs []types.MatchedJob, req *types.SearchRequest) []types.MatchedJob {
	hasProfile := req.CandidateProfile != nil

	modeSet := make(map[string]bool, len(req.WorkModes))
	for _, m := range req.WorkModes {
		modeSet[m] = true
	}
	typeSet := make(map[string]bool, len(req.EmploymentTypes))
	for _, t := range req.EmploymentTypes {
		typeSet[t] = true
	}

	filtered := make([]types.MatchedJob, 0, len(jobs))
	for _, job := range jobs {
		if len(modeSet) > 0 && !modeSet[job.EffectiveWorkMode()] {
			continue
		}
		if len(typeSet) > 0 && !typeSet[effectiveEmploymentType(&job)] {
			continue
		}
		if req.IndSponsorOnly && !job.Sponsor.IsMatch {
			continue
		}
		if hasProfile && req.MatchThreshold > 0 && job.MatchScore < req.MatchThreshold {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

func effectiveEmploymentType(job *types.MatchedJob) string {
	if job.Enriched.EmploymentType != "" {
		return job.Enriched.EmploymentType
	}
	return job.EmploymentType
}

// Sort orders jobs descending by match score, then posted date (ISO dates
// compare lexicographically), then salary ceiling.
func Sort(jobs []types.MatchedJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := &jobs[i], &jobs[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if a.PostedDate != b.PostedDate {
			return a.PostedDate > b.PostedDate
		}
		return a.EffectiveSalaryMax() > b.EffectiveSalaryMax()
	})
}

// Top truncates to the requested page size.
func Top(jobs []types.MatchedJob, n int) []types.MatchedJob {
	if n > 0 && len(jobs) > n {
		return jobs[:n]
	}
	return jobs
}
