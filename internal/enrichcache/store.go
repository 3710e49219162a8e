// Package enrichcache provides the PostgreSQL-backed cache of AI-derived
// job attributes, keyed by job_id with a content hash of the description
// for invalidation.
package enrichcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-radar/internal/types"
)

// Store wraps a PostgreSQL connection pool over the cached_jobs table.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Pool exposes the underlying pool so other stores can share the
// connection.
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Lookup fetches completed cache entries for the given job IDs. Only
// rows with enrichment_status = 'done' count as hits; failed and pending
// rows are left for the caller to decide about. Malformed rows are
// skipped individually, never fatal to the batch.
func (s *Store) Lookup(ctx context.Context, jobIDs []string) (map[string]types.CacheEntry, error) {
	if len(jobIDs) == 0 {
		return map[string]types.CacheEntry{}, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT job_id, attributes, description_hash, enrichment_status, enriched_at, updated_at
		 FROM cached_jobs
		 WHERE job_id = ANY($1) AND enrichment_status = 'done'`,
		jobIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached jobs: %w", err)
	}
	defer rows.Close()

	hits := make(map[string]types.CacheEntry)
	for rows.Next() {
		var entry types.CacheEntry
		var attributesJSON []byte
		if err := rows.Scan(&entry.JobID, &attributesJSON, &entry.DescriptionHash,
			&entry.EnrichmentStatus, &entry.EnrichedAt, &entry.UpdatedAt); err != nil {
			log.Printf("cache: skipping malformed row: %v", err)
			continue
		}
		if attributesJSON != nil {
			if err := json.Unmarshal(attributesJSON, &entry.Attributes); err != nil {
				log.Printf("cache: skipping row %s with malformed attributes: %v", entry.JobID, err)
				continue
			}
		}
		hits[entry.JobID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cached jobs: %w", err)
	}

	return hits, nil
}

// Validate drops hits whose stored description hash no longer matches
// the current listing text. Each invalidation is logged; the entry is
// simply treated as a miss so the job gets re-enriched.
func Validate(hits map[string]types.CacheEntry, listings []types.RawListing) map[string]types.CacheEntry {
	byID := make(map[string]types.RawListing, len(listings))
	for _, l := range listings {
		byID[l.JobID] = l
	}

	valid := make(map[string]types.CacheEntry, len(hits))
	for jobID, entry := range hits {
		listing, ok := byID[jobID]
		if !ok {
			continue
		}
		if DescriptionHash(listing.Description) != entry.DescriptionHash {
			log.Printf("cache: invalidating %s, description changed", jobID)
			continue
		}
		valid[jobID] = entry
	}
	return valid
}

// Write upserts entries in a single batch, last writer wins. It is
// called fire-and-forget after the response path; failures are returned
// so the caller can log them but they must never surface to the user.
func (s *Store) Write(ctx context.Context, entries []types.CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, entry := range entries {
		attributesJSON, err := json.Marshal(entry.Attributes)
		if err != nil {
			log.Printf("cache: skipping unmarshalable entry %s: %v", entry.JobID, err)
			continue
		}
		batch.Queue(
			`INSERT INTO cached_jobs (job_id, attributes, description_hash, enrichment_status, enriched_at, updated_at)
			 VALUES ($1, $2, $3, $4, NOW(), NOW())
			 ON CONFLICT (job_id) DO UPDATE SET
			   attributes = $2, description_hash = $3, enrichment_status = $4, updated_at = NOW()`,
			entry.JobID, attributesJSON, entry.DescriptionHash, entry.EnrichmentStatus,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert cache entry: %w", err)
		}
	}
	return nil
}
