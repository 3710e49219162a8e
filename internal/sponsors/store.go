package sponsors

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/job-radar/internal/types"
)

// pageSize is how many sponsor rows one page of the registry read returns.
const pageSize = 1000

// insertBatchSize is how many rows one insert statement carries on sync.
const insertBatchSize = 500

// Store reads and replaces the ind_sponsors table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an existing connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect establishes a dedicated connection pool to the database.
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

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// LoadAll reads the full registry in pages. Malformed rows are skipped
// individually rather than failing the load.
func (s *Store) LoadAll(ctx context.Context) ([]types.SponsorRecord, error) {
	var all []types.SponsorRecord
	for offset := 0; ; offset += pageSize {
		page, err := s.loadPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
	}
	return all, nil
}

func (s *Store) loadPage(ctx context.Context, offset int) ([]types.SponsorRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT company_name, company_name_normalized
		 FROM ind_sponsors
		 ORDER BY company_name
		 LIMIT $1 OFFSET $2`,
		pageSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sponsors: %w", err)
	}
	defer rows.Close()

	var page []types.SponsorRecord
	for rows.Next() {
		var record types.SponsorRecord
		if err := rows.Scan(&record.CompanyName, &record.CompanyNameNormalized); err != nil {
			log.Printf("sponsors: skipping malformed row: %v", err)
			continue
		}
		page = append(page, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sponsors: %w", err)
	}
	return page, nil
}

// ReplaceAll clears the registry and inserts the new records in batches.
// Returns how many rows were inserted.
func (s *Store) ReplaceAll(ctx context.Context, records []types.SponsorRecord) (int, error) {
	if _, err := s.pool.Exec(ctx, `DELETE FROM ind_sponsors`); err != nil {
		return 0, fmt.Errorf("failed to clear sponsors: %w", err)
	}

	inserted := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := &pgx.Batch{}
		for _, record := range records[start:end] {
			batch.Queue(
				`INSERT INTO ind_sponsors (company_name, company_name_normalized)
				 VALUES ($1, $2)`,
				record.CompanyName, record.CompanyNameNormalized,
			)
		}

		results := s.pool.SendBatch(ctx, batch)
		batchErr := false
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				log.Printf("sponsors: batch insert error at %d: %v", start+i, err)
				batchErr = true
				break
			}
		}
		_ = results.Close()
		if !batchErr {
			inserted += end - start
		}
	}
	return inserted, nil
}
