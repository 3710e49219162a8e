package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-radar/internal/types"
)

func listing(source, company, title string) types.RawListing {
	return types.RawListing{
		Source:      source,
		JobID:       source + "-" + title,
		CompanyName: company,
		Title:       title,
	}
}

func TestKey_CaseInsensitive(t *testing.T) {
	a := listing("gh", "Adyen", "Backend Engineer")
	b := listing("adz", "ADYEN", "backend engineer")
	assert.Equal(t, Key(a), Key(b))
}

func TestMerge_FirstOccurrenceWins(t *testing.T) {
	direct := []types.RawListing{listing("gh", "Adyen", "Backend Engineer")}
	aggregator := []types.RawListing{
		listing("adz", "Adyen", "Backend Engineer"),
		listing("adz", "Mollie", "Data Engineer"),
	}

	merged := Merge(direct, aggregator)
	assert.Len(t, merged, 2)
	assert.Equal(t, "gh", merged[0].Source, "direct listing should win the tie")
	assert.Equal(t, "Mollie", merged[1].CompanyName)
}

func TestMerge_Idempotent(t *testing.T) {
	list := []types.RawListing{
		listing("gh", "Adyen", "Backend Engineer"),
		listing("lv", "Mollie", "Data Engineer"),
	}
	once := Merge(list)
	twice := Merge(once)
	assert.Equal(t, once, twice)
}

func TestMerge_PreservesOrder(t *testing.T) {
	list := []types.RawListing{
		listing("gh", "C1", "T1"),
		listing("gh", "C2", "T2"),
		listing("gh", "C3", "T3"),
	}
	merged := Merge(list)
	assert.Equal(t, []string{"C1", "C2", "C3"},
		[]string{merged[0].CompanyName, merged[1].CompanyName, merged[2].CompanyName})
}

func TestMerge_Empty(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([]types.RawListing{}))
}
