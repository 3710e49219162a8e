// Package pipeline orchestrates one search request end to end: parallel
// source fetch, dedup, pre-score shortlist, cache split, concurrent
// enrichment and sponsor-registry load, scoring, ranking, and the
// asynchronous cache write-back.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-radar/internal/commute"
	"github.com/jonathan/job-radar/internal/dedup"
	"github.com/jonathan/job-radar/internal/enrich"
	"github.com/jonathan/job-radar/internal/enrichcache"
	"github.com/jonathan/job-radar/internal/match"
	"github.com/jonathan/job-radar/internal/prescore"
	"github.com/jonathan/job-radar/internal/rank"
	"github.com/jonathan/job-radar/internal/sources"
	"github.com/jonathan/job-radar/internal/sponsors"
	"github.com/jonathan/job-radar/internal/types"
)

// cacheWriteTimeout bounds the fire-and-forget write-back, which runs
// detached from the request context.
const cacheWriteTimeout = 30 * time.Second

// Cache is the enrichment cache surface the pipeline needs.
type Cache interface {
	Lookup(ctx context.Context, jobIDs []string) (map[string]types.CacheEntry, error)
	Write(ctx context.Context, entries []types.CacheEntry) error
}

// SponsorSource loads the full sponsor registry.
type SponsorSource interface {
	LoadAll(ctx context.Context) ([]types.SponsorRecord, error)
}

// Enricher turns cache misses into enrichment results.
type Enricher interface {
	Enrich(ctx context.Context, jobs []types.RawListing) map[string]enrich.Result
}

// Pipeline wires the search stages together. Cache, Sponsors, and
// Commute may be nil, in which case the corresponding stage is skipped.
// Enricher is mandatory: without one Search fails before any fetch.
type Pipeline struct {
	Adapters []sources.Adapter
	Cache    Cache
	Sponsors SponsorSource
	Enricher Enricher
	Commute  *commute.Augmenter
}

// Search runs the full pipeline for one request.
func (p *Pipeline) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if p.Enricher == nil {
		return nil, fmt.Errorf("enrichment is not configured")
	}
	req.ApplyDefaults()

	adapters := p.selectAdapters(req.DataSourceFilter)
	query := sources.Query{
		Keywords:     req.Keywords,
		Country:      req.Country,
		City:         req.City,
		MinSalary:    req.MinSalary,
		PostedWithin: req.PostedWithin,
	}

	fetched, counts := sources.FetchAll(ctx, adapters, query)
	deduped := dedup.Merge(fetched)
	shortlist := prescore.Shortlist(deduped, req.Keywords, req.City, req.TopN, time.Now())

	hits := p.cacheHits(ctx, shortlist)
	misses := make([]types.RawListing, 0, len(shortlist))
	for _, l := range shortlist {
		if _, ok := hits[l.JobID]; !ok {
			misses = append(misses, l)
		}
	}

	var (
		fresh    map[string]enrich.Result
		registry *sponsors.Registry
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		fresh = p.Enricher.Enrich(egCtx, misses)
		return nil
	})
	eg.Go(func() error {
		registry = p.loadRegistry(egCtx)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	jobs, summary := assemble(deduped, hits, fresh, registry, req)

	jobs = rank.Filter(jobs, req)
	rank.Sort(jobs)
	jobs = rank.Top(jobs, req.TopN)

	if req.CommuteOrigin != "" && p.Commute.Enabled() {
		p.Commute.Augment(ctx, jobs, req.CommuteOrigin, req.CommuteMode)
	}

	p.writeBack(shortlist, fresh)

	return &types.SearchResponse{Jobs: jobs, Sources: counts, Enrichment: summary}, nil
}

// selectAdapters restricts the adapter set when the request names sources.
func (p *Pipeline) selectAdapters(filter []string) []sources.Adapter {
	if len(filter) == 0 {
		return p.Adapters
	}
	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[name] = true
	}
	var selected []sources.Adapter
	for _, a := range p.Adapters {
		if wanted[a.Name()] {
			selected = append(selected, a)
		}
	}
	return selected
}

// cacheHits looks up and hash-validates cache entries for the shortlist.
// A cache error degrades to an empty hit set.
func (p *Pipeline) cacheHits(ctx context.Context, shortlist []types.RawListing) map[string]types.CacheEntry {
	if p.Cache == nil || len(shortlist) == 0 {
		return nil
	}
	ids := make([]string, len(shortlist))
	for i, l := range shortlist {
		ids[i] = l.JobID
	}
	hits, err := p.Cache.Lookup(ctx, ids)
	if err != nil {
		log.Printf("pipeline: cache lookup failed: %v", err)
		return nil
	}
	return enrichcache.Validate(hits, shortlist)
}

// loadRegistry loads the sponsor registry, degrading to an empty
// registry on failure.
func (p *Pipeline) loadRegistry(ctx context.Context) *sponsors.Registry {
	if p.Sponsors == nil {
		return sponsors.NewRegistry(nil)
	}
	records, err := p.Sponsors.LoadAll(ctx)
	if err != nil {
		log.Printf("pipeline: sponsor registry load failed: %v", err)
		return sponsors.NewRegistry(nil)
	}
	return sponsors.NewRegistry(records)
}

// assemble builds one MatchedJob per deduplicated listing, combining
// cached and fresh enrichment, sponsor matching, visa likelihood, and
// match scores, and tallies the enrichment summary.
func assemble(
	listings []types.RawListing,
	hits map[string]types.CacheEntry,
	fresh map[string]enrich.Result,
	registry *sponsors.Registry,
	req *types.SearchRequest,
) ([]types.MatchedJob, types.EnrichmentSummary) {
	summary := types.EnrichmentSummary{Total: len(listings)}
	jobs := make([]types.MatchedJob, 0, len(listings))

	for _, listing := range listings {
		job := types.MatchedJob{
			RawListing:       listing,
			EnrichmentStatus: types.EnrichmentPending,
		}
		if entry, ok := hits[listing.JobID]; ok {
			job.Enriched = entry.Attributes
			job.EnrichmentStatus = types.EnrichmentDone
			summary.Cached++
		} else if result, ok := fresh[listing.JobID]; ok {
			job.Enriched = result.Attributes
			job.EnrichmentStatus = result.Status
			switch result.Status {
			case types.EnrichmentDone:
				summary.Enriched++
			case types.EnrichmentFailed:
				summary.Failed++
			default:
				summary.Pending++
			}
		} else {
			summary.Pending++
		}

		job.Sponsor = registry.Match(listing.CompanyName)
		job.VisaLikelihood = match.VisaLikelihood(&job)
		match.Score(&job, req.CandidateProfile, req.StrictMode)

		jobs = append(jobs, job)
	}
	return jobs, summary
}

// writeBack persists every freshly enriched job (done or failed) after
// the response path, detached from the request.
func (p *Pipeline) writeBack(shortlist []types.RawListing, fresh map[string]enrich.Result) {
	if p.Cache == nil || len(fresh) == 0 {
		return
	}

	entries := make([]types.CacheEntry, 0, len(fresh))
	for _, listing := range shortlist {
		result, ok := fresh[listing.JobID]
		if !ok {
			continue
		}
		if result.Status != types.EnrichmentDone && result.Status != types.EnrichmentFailed {
			continue
		}
		entries = append(entries, types.CacheEntry{
			JobID:            listing.JobID,
			Attributes:       result.Attributes,
			DescriptionHash:  enrichcache.DescriptionHash(listing.Description),
			EnrichmentStatus: result.Status,
		})
	}
	if len(entries) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()
		if err := p.Cache.Write(ctx, entries); err != nil {
			log.Printf("pipeline: cache write-back failed: %v", err)
		}
	}()
}
