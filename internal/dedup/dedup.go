// Package dedup merges adapter outputs, dropping exact duplicates keyed
// by lower-cased company and title.
package dedup

import (
	"strings"

	"github.com/jonathan/job-radar/internal/types"
)

// Key returns the dedup key for a listing. Collisions are exact only;
// no fuzzy matching happens here.
func Key(l types.RawListing) string {
	return strings.ToLower(l.CompanyName) + "_" + strings.ToLower(l.Title)
}

// Merge concatenates adapter outputs in the given order and keeps the
// first occurrence of each key. Callers order the slices by source
// priority so a direct-from-company listing wins over an aggregator's
// copy of the same posting.
func Merge(lists ...[]types.RawListing) []types.RawListing {
	seen := make(map[string]bool)
	var merged []types.RawListing
	for _, list := range lists {
		for _, l := range list {
			k := Key(l)
			if seen[k] {
				continue
			}
			seen[k] = true
			merged = append(merged, l)
		}
	}
	return merged
}
