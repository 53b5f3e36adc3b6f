package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalysisSnapshot is one stored analysis run: the request that produced
// it and the full result, both as JSON. Snapshots are an audit record,
// not authoritative state; results are recomputed on each request.
type AnalysisSnapshot struct {
	ID           uuid.UUID              `json:"id"`
	UserID       *uuid.UUID             `json:"user_id,omitempty"`
	JobType      string                 `json:"job_type"`
	OverallScore int                    `json:"overall_score"`
	Request      *types.AnalysisRequest `json:"request,omitempty"`
	Result       *types.AnalysisResult  `json:"result,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// SaveAnalysis stores an analysis snapshot and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, userID *uuid.UUID, req *types.AnalysisRequest, result *types.AnalysisResult) (uuid.UUID, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis request: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, job_type, overall_score, request, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, req.JobType, result.OverallScore, reqJSON, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when no
// snapshot exists.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisSnapshot, error) {
	var snapshot AnalysisSnapshot
	var reqJSON, resultJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_type, overall_score, request, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&snapshot.ID, &snapshot.UserID, &snapshot.JobType, &snapshot.OverallScore,
		&reqJSON, &resultJSON, &snapshot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if len(reqJSON) > 0 {
		snapshot.Request = &types.AnalysisRequest{}
		if err := json.Unmarshal(reqJSON, snapshot.Request); err != nil {
			return nil, fmt.Errorf("failed to decode analysis request: %w", err)
		}
	}
	if len(resultJSON) > 0 {
		snapshot.Result = &types.AnalysisResult{}
		if err := json.Unmarshal(resultJSON, snapshot.Result); err != nil {
			return nil, fmt.Errorf("failed to decode analysis result: %w", err)
		}
	}
	return &snapshot, nil
}

// AnalysisFilters holds optional filters for listing snapshots
type AnalysisFilters struct {
	UserID  uuid.UUID
	JobType string
	Limit   int
}

// AnalysisSummary is a lightweight view of a snapshot for listing
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	JobType      string    `json:"job_type"`
	OverallScore int       `json:"overall_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListAnalyses retrieves snapshot summaries with optional filters
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, job_type, overall_score, created_at FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != uuid.Nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}
	if filters.JobType != "" {
		query += fmt.Sprintf(" AND job_type = $%d", argNum)
		args = append(args, filters.JobType)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.JobType, &s.OverallScore, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteAnalysis removes a stored snapshot
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
