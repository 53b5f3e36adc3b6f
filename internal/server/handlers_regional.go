package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/regional"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleListProfiles lists regional profiles, optionally filtered by
// country via ?country=.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	profiles, err := s.db.ListProfiles(r.Context(), db.ProfileFilters{
		Country: r.URL.Query().Get("country"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list regional profiles")
		return
	}
	if profiles == nil {
		profiles = []types.RegionalProfile{}
	}
	s.jsonResponse(w, http.StatusOK, profiles)
}

// handleGetProfile resolves one profile from a free-text location
// (?location=City, State, Country) or explicit query parts.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	var query regional.Query
	if location := r.URL.Query().Get("location"); location != "" {
		query = regional.ParseLocation(location)
	} else {
		query = regional.Query{
			Country: r.URL.Query().Get("country"),
			State:   r.URL.Query().Get("state"),
			City:    r.URL.Query().Get("city"),
		}
	}
	if query == (regional.Query{}) {
		s.errorResponse(w, http.StatusBadRequest, "location or city/state/country required")
		return
	}

	profile, err := s.db.Find(r.Context(), query)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to look up regional profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "no regional profile for location")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleBulkUpsert writes a caller-supplied batch of profiles.
func (s *Server) handleBulkUpsert(w http.ResponseWriter, r *http.Request) {
	var profiles []types.RegionalProfile
	if err := json.NewDecoder(r.Body).Decode(&profiles); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile payload")
		return
	}
	if len(profiles) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "empty profile batch")
		return
	}

	summary, err := s.db.BulkUpsert(r.Context(), profiles)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to upsert profiles")
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleRefresh runs a full ingestion pass against the configured
// external salary sources.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	summary, err := s.ingester.Run(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}
