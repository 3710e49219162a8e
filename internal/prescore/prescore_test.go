package prescore

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-radar/internal/types"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func TestScore_KeywordInTitle(t *testing.T) {
	l := types.RawListing{Title: "Senior Go Developer"}
	assert.Equal(t, 40, Score(l, "go developer", "", testNow))
}

func TestScore_KeywordOnlyInDescription(t *testing.T) {
	l := types.RawListing{Title: "Software Engineer", Description: "We need a Go developer"}
	assert.Equal(t, 20, Score(l, "go developer", "", testNow))
}

func TestScore_TitleBeatsDescription(t *testing.T) {
	// Keyword in both places scores the title points only, not the sum.
	l := types.RawListing{Title: "Go Developer", Description: "go developer role"}
	assert.Equal(t, 40, Score(l, "go developer", "", testNow))
}

func TestScore_SalaryPresent(t *testing.T) {
	l := types.RawListing{SalaryMin: intPtr(50000)}
	assert.Equal(t, 10, Score(l, "", "", testNow))
}

func TestScore_RecencyScale(t *testing.T) {
	tests := []struct {
		daysAgo  int
		expected int
	}{
		{1, 15},
		{3, 15},
		{5, 10},
		{10, 5},
		{20, 0},
	}
	for _, tt := range tests {
		posted := testNow.AddDate(0, 0, -tt.daysAgo).Format("2006-01-02")
		l := types.RawListing{PostedDate: posted}
		assert.Equal(t, tt.expected, Score(l, "", "", testNow), "%d days ago", tt.daysAgo)
	}
}

func TestScore_MalformedDateIgnored(t *testing.T) {
	l := types.RawListing{PostedDate: "yesterday"}
	assert.Equal(t, 0, Score(l, "", "", testNow))
}

func TestScore_DescriptionLengthAndCity(t *testing.T) {
	l := types.RawListing{City: "Amsterdam", DescriptionLen: 500}
	assert.Equal(t, 20, Score(l, "", "amsterdam", testNow))
}

func TestShortlist_LimitIsTwiceTopN(t *testing.T) {
	var all []types.RawListing
	for i := 0; i < 30; i++ {
		l := types.RawListing{JobID: fmt.Sprintf("job-%d", i), Title: "Engineer"}
		if i < 12 {
			l.Title = "Go Engineer" // these should score higher
		}
		all = append(all, l)
	}

	shortlist := Shortlist(all, "go", "", 10, testNow)
	assert.Len(t, shortlist, 20)
	// The 12 keyword matches must all make the cut.
	matches := 0
	for _, l := range shortlist {
		if l.Title == "Go Engineer" {
			matches++
		}
	}
	assert.Equal(t, 12, matches)
}

func TestShortlist_CappedAtHundred(t *testing.T) {
	var all []types.RawListing
	for i := 0; i < 250; i++ {
		all = append(all, types.RawListing{JobID: fmt.Sprintf("job-%d", i)})
	}
	shortlist := Shortlist(all, "", "", 80, testNow)
	assert.Len(t, shortlist, ShortlistCap)
}

func TestShortlist_SmallerThanLimit(t *testing.T) {
	all := []types.RawListing{{JobID: "only"}}
	shortlist := Shortlist(all, "", "", 25, testNow)
	assert.Len(t, shortlist, 1)
}

func TestShortlist_StableForEqualScores(t *testing.T) {
	all := []types.RawListing{
		{JobID: "first"},
		{JobID: "second"},
		{JobID: "third"},
	}
	shortlist := Shortlist(all, "", "", 2, testNow)
	assert.Equal(t, "first", shortlist[0].JobID)
	assert.Equal(t, "second", shortlist[1].JobID)
}
