// Package sources contains one adapter per external job board. Each
// adapter fetches and normalizes raw listings into the canonical shape,
// tolerates its own failure by returning an empty list, and filters for
// the target region client-side where the upstream API cannot.
package sources

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-radar/internal/types"
)

// Query carries the subset of the search request that adapters can act on.
type Query struct {
	Keywords     string
	Country      string
	City         string
	MinSalary    int
	PostedWithin string // 24h, 7d, 30d or empty
}

// Adapter fetches and normalizes listings from one job board.
type Adapter interface {
	// Name identifies the adapter in source counts and logs.
	Name() string
	// Enabled reports whether the adapter has the credentials it needs.
	// Disabled adapters contribute zero listings without erroring.
	Enabled() bool
	// Fetch returns normalized listings for the query. Implementations
	// return an empty slice on upstream failure rather than aborting
	// the aggregate request; the error is for logging only.
	Fetch(ctx context.Context, q Query) ([]types.RawListing, error)
}

// FetchAll runs every adapter in parallel and concatenates their output
// in the order the adapters were given, which is their dedup priority
// order. A failing adapter is logged and contributes zero listings; the
// aggregate never fails. The returned counts map always has an entry per
// adapter, so a failed source reports 0.
func FetchAll(ctx context.Context, adapters []Adapter, q Query) ([]types.RawListing, map[string]int) {
	results := make([][]types.RawListing, len(adapters))
	counts := make(map[string]int, len(adapters))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, adapter := range adapters {
		i, adapter := i, adapter
		g.Go(func() error {
			listings, err := adapter.Fetch(gCtx, q)
			if err != nil {
				log.Printf("source %s failed: %v", adapter.Name(), err)
				listings = nil
			}
			results[i] = listings
			mu.Lock()
			counts[adapter.Name()] = len(listings)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // adapter errors are captured per-task, never propagated

	var all []types.RawListing
	for _, r := range results {
		all = append(all, r...)
	}
	return all, counts
}
