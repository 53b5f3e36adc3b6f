package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// handleAnalyze runs a full resume analysis. The response body is
// always a well-formed result: validation failures get a 400 with the
// canonical zeroed shape so clients never break on missing fields.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, types.DefaultAnalysisResult())
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), &req)
	if err != nil {
		var verr *analyzer.ValidationError
		if errors.As(err, &verr) {
			s.jsonResponse(w, http.StatusBadRequest, result)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	// Snapshot is an audit record; failure to store never fails the
	// analysis.
	if s.db != nil {
		var userID *uuid.UUID
		if id, err := middleware.GetUserID(r); err == nil {
			userID = &id
		}
		if _, err := s.db.SaveAnalysis(r.Context(), userID, &req, result); err != nil {
			log.Printf("failed to save analysis snapshot: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListAnalyses lists the authenticated user's stored analyses.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summaries, err := s.db.ListAnalyses(r.Context(), db.AnalysisFilters{
		UserID:  userID,
		JobType: r.URL.Query().Get("job_type"),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if summaries == nil {
		summaries = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetAnalysis returns one stored analysis owned by the caller.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	snapshot, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if snapshot == nil || snapshot.UserID == nil || *snapshot.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleDeleteAnalysis removes a stored analysis owned by the caller.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	snapshot, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if snapshot == nil || snapshot.UserID == nil || *snapshot.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
