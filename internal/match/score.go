// Package match scores enriched jobs against a candidate profile and
// derives a visa likelihood from sponsor and language signals.
package match

import (
	"math"
	"strings"

	"github.com/jonathan/job-radar/internal/types"
)

// Sub-score weights. Hand-tuned; treat as configuration, not truth.
const (
	weightSkills     = 0.40
	weightTools      = 0.20
	weightSeniority  = 0.15
	weightExperience = 0.15
	weightLanguage   = 0.10

	// neutralScore is used when a job states nothing for a dimension,
	// so absent data never penalizes.
	neutralScore = 50

	// strictMissingPenalty is subtracted per missing skill in strict mode.
	strictMissingPenalty = 10
)

// seniorityRank maps seniority labels to an ordinal scale.
var seniorityRank = map[string]int{
	"junior":  0,
	"mid":     1,
	"senior":  2,
	"lead":    3,
	"manager": 4,
}

// Score fills the match fields of job in place. Without a profile all
// scores stay zero. Strict mode penalizes each missing hard skill.
func Score(job *types.MatchedJob, profile *types.CandidateProfile, strict bool) {
	if profile == nil {
		return
	}

	matched, missing := overlap(job.Enriched.HardSkills, profile.HardSkills)
	job.MatchedSkills = matched
	job.MissingSkills = missing

	breakdown := types.MatchBreakdown{
		HardSkills: listScore(job.Enriched.HardSkills, profile.HardSkills, neutralScore),
		Tools:      listScore(job.Enriched.SoftwareTools, profile.SoftwareTools, neutralScore),
		Seniority:  seniorityScore(job.Enriched.SeniorityLevel, profile.Seniority),
		Experience: experienceScore(job.Enriched.YearsExperienceMin, profile.YearsExperience),
		Language:   listScore(job.Enriched.RequiredLanguages, profile.Languages, 100),
	}

	overall := weightSkills*float64(breakdown.HardSkills) +
		weightTools*float64(breakdown.Tools) +
		weightSeniority*float64(breakdown.Seniority) +
		weightExperience*float64(breakdown.Experience) +
		weightLanguage*float64(breakdown.Language)
	score := int(math.Round(overall))

	if strict && len(missing) > 0 {
		score -= strictMissingPenalty * len(missing)
		if score < 0 {
			score = 0
		}
	}

	job.MatchDetail = breakdown
	job.MatchScore = score
}

// VisaLikelihood buckets a job by sponsor match and stated signals:
// High needs a sponsor match plus an explicit yes or an English
// requirement, Medium needs either, everything else is Low.
func VisaLikelihood(job *types.MatchedJob) string {
	explicitYes := job.Enriched.VisaSponsorshipMentioned == "yes"
	englishRequired := containsFold(job.Enriched.RequiredLanguages, "english")

	switch {
	case job.Sponsor.IsMatch && (explicitYes || englishRequired):
		return types.VisaHigh
	case job.Sponsor.IsMatch || explicitYes:
		return types.VisaMedium
	default:
		return types.VisaLow
	}
}

// overlap splits the job's required skills into those the candidate has
// and those they lack, preserving the job's original casing.
func overlap(required, have []string) (matched, missing []string) {
	haveSet := make(map[string]bool, len(have))
	for _, s := range have {
		haveSet[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, s := range required {
		if haveSet[strings.ToLower(strings.TrimSpace(s))] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

// listScore is the matched fraction of required items, or empty for a
// job that requires nothing.
func listScore(required, have []string, empty int) int {
	if len(required) == 0 {
		return empty
	}
	matched, _ := overlap(required, have)
	return int(math.Round(100 * float64(len(matched)) / float64(len(required))))
}

func seniorityScore(jobLevel, candidateLevel string) int {
	jobRank, jobOK := seniorityRank[strings.ToLower(strings.TrimSpace(jobLevel))]
	candRank, candOK := seniorityRank[strings.ToLower(strings.TrimSpace(candidateLevel))]
	if !jobOK || !candOK {
		return neutralScore
	}
	delta := jobRank - candRank
	if delta < 0 {
		delta = -delta
	}
	score := 100 - 25*delta
	if score < 0 {
		score = 0
	}
	return score
}

func experienceScore(requiredMin *int, candidateYears int) int {
	if requiredMin == nil {
		return 100
	}
	if candidateYears >= *requiredMin {
		return 100
	}
	score := 100 + 20*(candidateYears-*requiredMin)
	if score < 0 {
		score = 0
	}
	return score
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}
