package server

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-radar/internal/sponsors"
	"github.com/jonathan/job-radar/internal/types"
)

// handleSearch runs one search request through the pipeline.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req types.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Keywords == "" {
		s.errorResponse(w, http.StatusBadRequest, "keywords is required")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("[search %s] keywords=%q city=%q topN=%d", requestID, req.Keywords, req.City, req.TopN)

	resp, err := s.pipeline.Search(r.Context(), &req)
	if err != nil {
		log.Printf("[search %s] failed: %v", requestID, err)
		s.errorResponse(w, http.StatusInternalServerError, "search failed")
		return
	}

	log.Printf("[search %s] %d jobs (total=%d cached=%d enriched=%d)",
		requestID, len(resp.Jobs), resp.Enrichment.Total, resp.Enrichment.Cached, resp.Enrichment.Enriched)
	s.jsonResponse(w, http.StatusOK, resp)
}

// profileExtractRequest carries a CV upload: the file content base64
// encoded plus its original name for type sniffing.
type profileExtractRequest struct {
	FileBase64 string `json:"fileBase64"`
	FileName   string `json:"fileName"`
}

// handleProfileExtract parses an uploaded CV into a candidate profile
// the client can attach to subsequent search requests.
func (s *Server) handleProfileExtract(w http.ResponseWriter, r *http.Request) {
	if s.profiles == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "profile extraction is not configured")
		return
	}

	var req profileExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FileBase64 == "" {
		s.errorResponse(w, http.StatusBadRequest, "no file provided")
		return
	}
	file, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "fileBase64 is not valid base64")
		return
	}

	profile, err := s.profiles.ExtractProfile(r.Context(), file, req.FileName)
	if err != nil {
		log.Printf("profile extract: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "profile extraction failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]*types.CandidateProfile{"profile": profile})
}

// handleSponsorSync refreshes the sponsor registry from the IND register.
func (s *Server) handleSponsorSync(w http.ResponseWriter, r *http.Request) {
	if s.sponsorStore == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "sponsor store is not configured")
		return
	}

	records, err := sponsors.FetchRegister(r.Context(), nil)
	if err != nil {
		log.Printf("sponsor sync: fetch failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "failed to fetch sponsor register")
		return
	}

	inserted, err := s.sponsorStore.ReplaceAll(r.Context(), records)
	if err != nil {
		log.Printf("sponsor sync: store failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to store sponsors")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]int{"sponsors": inserted})
}
