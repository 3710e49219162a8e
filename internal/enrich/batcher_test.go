package enrich

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-radar/internal/llm"
	"github.com/jonathan/job-radar/internal/types"
)

// fakeExtractor returns canned attributes and counts calls.
type fakeExtractor struct {
	calls      atomic.Int32
	mu         sync.Mutex
	batchSizes []int
	err        error
	skipJobIDs map[string]bool
}

func (f *fakeExtractor) ExtractJobs(_ context.Context, jobs []llm.JobInput) (map[string]types.EnrichedAttributes, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.batchSizes = append(f.batchSizes, len(jobs))
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]types.EnrichedAttributes, len(jobs))
	for _, j := range jobs {
		if f.skipJobIDs[j.JobID] {
			continue
		}
		out[j.JobID] = types.EnrichedAttributes{HardSkills: []string{"go"}}
	}
	return out, nil
}

func (f *fakeExtractor) Close() error { return nil }

func longListing(id string) types.RawListing {
	desc := strings.Repeat("requirements ", 20)
	return types.RawListing{JobID: id, Title: "Engineer", Description: desc, DescriptionLen: len(desc)}
}

func TestEnrich_SplitsIntoBatches(t *testing.T) {
	extractor := &fakeExtractor{}
	b := NewBatcher(extractor)

	var jobs []types.RawListing
	for i := 0; i < 45; i++ {
		jobs = append(jobs, longListing(fmt.Sprintf("job-%d", i)))
	}

	results := b.Enrich(context.Background(), jobs)
	assert.Len(t, results, 45)
	assert.Equal(t, int32(3), extractor.calls.Load(), "45 jobs in batches of 20")
	for _, r := range results {
		assert.Equal(t, types.EnrichmentDone, r.Status)
	}
}

func TestEnrich_SkipsShortDescriptions(t *testing.T) {
	extractor := &fakeExtractor{}
	b := NewBatcher(extractor)

	short := types.RawListing{JobID: "short", Description: "tiny", DescriptionLen: 4}
	results := b.Enrich(context.Background(), []types.RawListing{short, longListing("long")})

	assert.NotContains(t, results, "short", "skipped jobs stay pending, not failed")
	assert.Contains(t, results, "long")
}

func TestEnrich_NothingEligible(t *testing.T) {
	extractor := &fakeExtractor{}
	b := NewBatcher(extractor)

	results := b.Enrich(context.Background(), []types.RawListing{
		{JobID: "a", DescriptionLen: 10},
	})
	assert.Empty(t, results)
	assert.Equal(t, int32(0), extractor.calls.Load())
}

func TestEnrich_FailedCallFailsWholeBatch(t *testing.T) {
	extractor := &fakeExtractor{err: fmt.Errorf("deadline exceeded")}
	b := NewBatcher(extractor)

	results := b.Enrich(context.Background(), []types.RawListing{longListing("a"), longListing("b")})
	require.Len(t, results, 2)
	assert.Equal(t, types.EnrichmentFailed, results["a"].Status)
	assert.Equal(t, types.EnrichmentFailed, results["b"].Status)
}

func TestEnrich_MissingJobIDFailsIndividually(t *testing.T) {
	extractor := &fakeExtractor{skipJobIDs: map[string]bool{"dropped": true}}
	b := NewBatcher(extractor)

	results := b.Enrich(context.Background(), []types.RawListing{longListing("kept"), longListing("dropped")})
	assert.Equal(t, types.EnrichmentDone, results["kept"].Status)
	assert.Equal(t, types.EnrichmentFailed, results["dropped"].Status)
}
