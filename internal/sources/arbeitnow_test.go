package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arbeitnowFixture = `{
	"data": [
		{
			"slug": "golang-developer-utrecht",
			"title": "Golang Developer",
			"company_name": "Sendcloud",
			"location": "Utrecht",
			"remote": true,
			"url": "https://www.arbeitnow.com/view/golang-developer-utrecht",
			"tags": ["Go", "Backend"],
			"job_types": ["full_time"],
			"created_at": 1749600000,
			"description": "<p>Ship parcels with Go.</p>"
		},
		{
			"slug": "java-dev-munich",
			"title": "Java Developer",
			"company_name": "Bayern Soft",
			"location": "Munich",
			"remote": false,
			"url": "https://www.arbeitnow.com/view/java-dev-munich",
			"tags": [],
			"job_types": [],
			"created_at": 1749600000,
			"description": "Java."
		},
		{
			"slug": "tagged-role-amsterdam",
			"title": "Platform Engineer",
			"company_name": "Picnic",
			"location": "Amsterdam",
			"remote": false,
			"url": "https://www.arbeitnow.com/view/tagged-role-amsterdam",
			"tags": ["golang"],
			"job_types": ["part_time"],
			"created_at": 1749600000,
			"description": "Infra work."
		}
	]
}`

func TestArbeitnow_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(arbeitnowFixture))
	}))
	defer server.Close()

	adapter := NewArbeitnow()
	adapter.BaseURL = server.URL

	listings, err := adapter.Fetch(context.Background(), Query{Keywords: "golang"})
	require.NoError(t, err)

	// Munich fails the region check; the Amsterdam role matches on a tag.
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, "arb-golang-developer-utrecht", first.JobID)
	assert.Equal(t, "Sendcloud", first.CompanyName)
	assert.Equal(t, "Full-time", first.EmploymentType)
	assert.Equal(t, "Remote", first.WorkMode)
	assert.NotContains(t, first.Description, "<p>")

	second := listings[1]
	assert.Equal(t, "Picnic", second.CompanyName)
	assert.Equal(t, "Part-time", second.EmploymentType)
	assert.Empty(t, second.WorkMode, "on-site is left for enrichment to decide")
}
