// Package sponsors matches company names against the IND recognised
// sponsor registry and keeps the registry synced from the public
// register.
package sponsors

import (
	"strings"

	"github.com/jonathan/job-radar/internal/normalize"
	"github.com/jonathan/job-radar/internal/types"
)

// FuzzyThreshold is the minimum token similarity for a fuzzy match.
// Hand-tuned; below 0.80 false positives on generic words creep in.
const FuzzyThreshold = 0.80

// Match methods, in the order they are attempted.
const (
	MethodExact  = "exact"
	MethodPrefix = "prefix"
	MethodFuzzy  = "fuzzy"
	MethodNone   = "none"
)

// Registry is an in-memory index over the sponsor list, built once per
// request from the full (paginated) registry read.
type Registry struct {
	set     map[string]bool
	ordered []string
	display map[string]string // normalized -> canonical display name
}

// NewRegistry indexes sponsor records under the shared normalizer, the
// same one applied to job company names, so matching is symmetric.
func NewRegistry(records []types.SponsorRecord) *Registry {
	r := &Registry{
		set:     make(map[string]bool, len(records)),
		display: make(map[string]string, len(records)),
	}
	for _, record := range records {
		name := record.CompanyNameNormalized
		if name == "" {
			name = record.CompanyName
		}
		n := normalize.CompanyName(name)
		if n == "" {
			continue
		}
		if !r.set[n] {
			r.ordered = append(r.ordered, n)
		}
		r.set[n] = true
		if _, exists := r.display[n]; !exists {
			r.display[n] = record.CompanyName
		}
	}
	return r
}

// Len returns the number of distinct normalized sponsors.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Match tries exact, then prefix/contains, then fuzzy token similarity.
// First success wins; no match yields method "none".
func (r *Registry) Match(companyName string) types.SponsorMatch {
	query := normalize.CompanyName(companyName)
	if query == "" {
		return types.SponsorMatch{Method: MethodNone}
	}

	if r.set[query] {
		return types.SponsorMatch{
			IsMatch:     true,
			Method:      MethodExact,
			MatchedName: r.displayName(query),
		}
	}

	for _, sponsor := range r.ordered {
		if strings.HasPrefix(sponsor, query) || strings.HasPrefix(query, sponsor) {
			return types.SponsorMatch{
				IsMatch:     true,
				Method:      MethodPrefix,
				MatchedName: r.displayName(sponsor),
			}
		}
	}

	best := 0.0
	bestSponsor := ""
	for _, sponsor := range r.ordered {
		if score := normalize.TokenSimilarity(query, sponsor); score > best {
			best = score
			bestSponsor = sponsor
		}
	}
	if best >= FuzzyThreshold {
		return types.SponsorMatch{
			IsMatch:     true,
			Method:      MethodFuzzy,
			MatchedName: r.displayName(bestSponsor),
		}
	}

	return types.SponsorMatch{Method: MethodNone}
}

func (r *Registry) displayName(normalized string) string {
	if display, ok := r.display[normalized]; ok && display != "" {
		return display
	}
	return normalized
}
