// Package enrich dispatches uncached shortlist jobs to the extraction
// model in fixed-size batches under a bounded concurrency gate.
package enrich

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-radar/internal/llm"
	"github.com/jonathan/job-radar/internal/types"
)

const (
	// DefaultBatchSize is how many jobs go into one model call.
	DefaultBatchSize = 20
	// DefaultConcurrency bounds simultaneous model calls; the upstream
	// rate limit is the constraint, not local CPU.
	DefaultConcurrency = 5
	// DefaultCallTimeout is the hard per-call deadline. A timed-out
	// batch degrades to failed jobs, never a failed request.
	DefaultCallTimeout = 20 * time.Second
	// MinDescriptionLength is the description length below which a job
	// is not worth a model call; such jobs are skipped and stay pending.
	MinDescriptionLength = 100
)

// Result carries the outcome of one job's enrichment attempt.
type Result struct {
	Attributes types.EnrichedAttributes
	Status     string // done or failed
}

// Batcher groups jobs into batches and runs them through the extractor.
type Batcher struct {
	extractor   llm.Extractor
	batchSize   int
	concurrency int
	timeout     time.Duration
}

// NewBatcher creates a Batcher with the default sizing.
func NewBatcher(extractor llm.Extractor) *Batcher {
	return &Batcher{
		extractor:   extractor,
		batchSize:   DefaultBatchSize,
		concurrency: DefaultConcurrency,
		timeout:     DefaultCallTimeout,
	}
}

// Enrich processes the given jobs and returns per-job results keyed by
// job_id. Jobs with too-short descriptions are skipped entirely: they
// get no entry in the result and remain pending. A failed or timed-out
// batch marks every job in that batch failed; missing job_ids in an
// otherwise successful response fail individually.
func (b *Batcher) Enrich(ctx context.Context, jobs []types.RawListing) map[string]Result {
	var eligible []types.RawListing
	for _, j := range jobs {
		if j.DescriptionLen >= MinDescriptionLength {
			eligible = append(eligible, j)
		}
	}
	if len(eligible) == 0 {
		return map[string]Result{}
	}

	results := make(map[string]Result, len(eligible))
	var mu sync.Mutex

	g := &errgroup.Group{}
	g.SetLimit(b.concurrency)
	for start := 0; start < len(eligible); start += b.batchSize {
		end := start + b.batchSize
		if end > len(eligible) {
			end = len(eligible)
		}
		batch := eligible[start:end]

		g.Go(func() error {
			batchResults := b.enrichBatch(ctx, batch)
			mu.Lock()
			for jobID, r := range batchResults {
				results[jobID] = r
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // batch failures are captured as failed jobs

	return results
}

// enrichBatch runs a single model call with a hard deadline.
func (b *Batcher) enrichBatch(ctx context.Context, batch []types.RawListing) map[string]Result {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	inputs := make([]llm.JobInput, len(batch))
	for i, j := range batch {
		inputs[i] = llm.JobInput{
			JobID:       j.JobID,
			Title:       j.Title,
			Company:     j.CompanyName,
			Description: j.Description,
		}
	}

	extracted, err := b.extractor.ExtractJobs(callCtx, inputs)
	if err != nil {
		log.Printf("enrichment batch of %d failed: %v", len(batch), err)
		return failAll(batch)
	}

	results := make(map[string]Result, len(batch))
	for _, j := range batch {
		if attrs, ok := extracted[j.JobID]; ok {
			results[j.JobID] = Result{Attributes: attrs, Status: types.EnrichmentDone}
		} else {
			results[j.JobID] = Result{Status: types.EnrichmentFailed}
		}
	}
	return results
}

func failAll(batch []types.RawListing) map[string]Result {
	results := make(map[string]Result, len(batch))
	for _, j := range batch {
		results[j.JobID] = Result{Status: types.EnrichmentFailed}
	}
	return results
}
