package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-radar/internal/enrich"
	"github.com/jonathan/job-radar/internal/pipeline"
	"github.com/jonathan/job-radar/internal/sources"
	"github.com/jonathan/job-radar/internal/types"
)

type stubAdapter struct {
	listings []types.RawListing
}

func (s *stubAdapter) Name() string  { return "stub" }
func (s *stubAdapter) Enabled() bool { return true }
func (s *stubAdapter) Fetch(context.Context, sources.Query) ([]types.RawListing, error) {
	return s.listings, nil
}

type stubEnricher struct{}

func (stubEnricher) Enrich(_ context.Context, jobs []types.RawListing) map[string]enrich.Result {
	results := make(map[string]enrich.Result, len(jobs))
	for _, j := range jobs {
		results[j.JobID] = enrich.Result{Status: types.EnrichmentDone}
	}
	return results
}

type stubProfileExtractor struct {
	profile *types.CandidateProfile
	err     error
	gotFile []byte
	gotName string
}

func (s *stubProfileExtractor) ExtractProfile(_ context.Context, file []byte, fileName string) (*types.CandidateProfile, error) {
	s.gotFile = file
	s.gotName = fileName
	return s.profile, s.err
}

func testServer() *Server {
	return testServerWithProfiles(nil)
}

func testServerWithProfiles(profiles ProfileExtractor) *Server {
	desc := strings.Repeat("backend services in go ", 10)
	p := &pipeline.Pipeline{
		Adapters: []sources.Adapter{&stubAdapter{listings: []types.RawListing{{
			Source:         "stub",
			JobID:          "stub-1",
			Title:          "Go Developer",
			CompanyName:    "Adyen",
			City:           "Amsterdam",
			Description:    desc,
			DescriptionLen: len(desc),
		}}}},
		Enricher: stubEnricher{},
	}
	return New(Config{Port: 8080}, p, nil, profiles)
}

func TestHealth(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSearch_OK(t *testing.T) {
	srv := testServer()
	body := strings.NewReader(`{"keywords": "go developer", "topN": 5}`)
	req := httptest.NewRequest(http.MethodPost, "/search", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "stub-1", resp.Jobs[0].JobID)
	assert.Equal(t, 1, resp.Sources["stub"])
	assert.Equal(t, 1, resp.Enrichment.Enriched)
}

func TestSearch_InvalidJSON(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_MissingKeywords(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"city": "Amsterdam"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "keywords")
}

func TestSearch_InvalidWorkMode(t *testing.T) {
	srv := testServer()
	body := strings.NewReader(`{"keywords": "go", "workModes": ["Occasionally"]}`)
	req := httptest.NewRequest(http.MethodPost, "/search", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileExtract_OK(t *testing.T) {
	stub := &stubProfileExtractor{profile: &types.CandidateProfile{
		HardSkills:      []string{"Go", "SQL"},
		YearsExperience: 6,
		Seniority:       "Senior",
	}}
	srv := testServerWithProfiles(stub)

	encoded := base64.StdEncoding.EncodeToString([]byte("Jane Doe\nSenior Go Developer"))
	body := strings.NewReader(`{"fileBase64": "` + encoded + `", "fileName": "cv.txt"}`)
	req := httptest.NewRequest(http.MethodPost, "/profile/extract", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("Jane Doe\nSenior Go Developer"), stub.gotFile)
	assert.Equal(t, "cv.txt", stub.gotName)

	var resp map[string]types.CandidateProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Go", "SQL"}, resp["profile"].HardSkills)
	assert.Equal(t, "Senior", resp["profile"].Seniority)
}

func TestProfileExtract_MissingFile(t *testing.T) {
	srv := testServerWithProfiles(&stubProfileExtractor{})
	req := httptest.NewRequest(http.MethodPost, "/profile/extract", strings.NewReader(`{"fileName": "cv.pdf"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no file provided")
}

func TestProfileExtract_InvalidBase64(t *testing.T) {
	srv := testServerWithProfiles(&stubProfileExtractor{})
	body := strings.NewReader(`{"fileBase64": "not*base64!"}`)
	req := httptest.NewRequest(http.MethodPost, "/profile/extract", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileExtract_UnavailableWithoutExtractor(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/profile/extract", strings.NewReader(`{"fileBase64": "YWJj"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSponsorSync_UnavailableWithoutStore(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodPost, "/sponsors/sync", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest(http.MethodOptions, "/search", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
