package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/regional"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Find looks up a regional profile by partial region match. Empty query
// fields match anything; city and country match case-insensitively so a
// free-text resume location resolves. Returns nil when no profile exists.
func (db *DB) Find(ctx context.Context, q regional.Query) (*types.RegionalProfile, error) {
	query := `SELECT country, state, city, cost_of_living_index, salary_multiplier, market_data,
		COALESCE(source, ''), updated_at
		FROM regional_profiles WHERE 1=1`
	args := []any{}
	argNum := 1

	if q.City != "" {
		query += fmt.Sprintf(" AND city ILIKE $%d", argNum)
		args = append(args, q.City)
		argNum++
	}
	if q.State != "" {
		query += fmt.Sprintf(" AND state ILIKE $%d", argNum)
		args = append(args, q.State)
		argNum++
	}
	if q.Country != "" {
		query += fmt.Sprintf(" AND country ILIKE $%d", argNum)
		args = append(args, q.Country)
	}
	query += " LIMIT 1"

	var profile types.RegionalProfile
	var marketJSON []byte
	err := db.pool.QueryRow(ctx, query, args...).Scan(
		&profile.Region.Country, &profile.Region.State, &profile.Region.City,
		&profile.CostOfLivingIndex, &profile.SalaryMultiplier, &marketJSON,
		&profile.Metadata.Source, &profile.Metadata.LastUpdated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find regional profile: %w", err)
	}
	if err := json.Unmarshal(marketJSON, &profile.MarketData); err != nil {
		return nil, fmt.Errorf("failed to decode market data: %w", err)
	}
	return &profile, nil
}

// ProfileFilters holds optional filters for listing profiles
type ProfileFilters struct {
	Country string
	Limit   int
	Offset  int
}

// ListProfiles retrieves regional profiles with optional filters
func (db *DB) ListProfiles(ctx context.Context, filters ProfileFilters) ([]types.RegionalProfile, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT country, state, city, cost_of_living_index, salary_multiplier, market_data,
		COALESCE(source, ''), updated_at
		FROM regional_profiles WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Country != "" {
		query += fmt.Sprintf(" AND country ILIKE $%d", argNum)
		args = append(args, filters.Country)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY country, city LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list regional profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.RegionalProfile
	for rows.Next() {
		var profile types.RegionalProfile
		var marketJSON []byte
		if err := rows.Scan(
			&profile.Region.Country, &profile.Region.State, &profile.Region.City,
			&profile.CostOfLivingIndex, &profile.SalaryMultiplier, &marketJSON,
			&profile.Metadata.Source, &profile.Metadata.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan regional profile: %w", err)
		}
		if err := json.Unmarshal(marketJSON, &profile.MarketData); err != nil {
			return nil, fmt.Errorf("failed to decode market data: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// UpsertProfile inserts or replaces a single regional profile keyed by
// (country, state, city). Reports whether a new row was created.
func (db *DB) UpsertProfile(ctx context.Context, profile types.RegionalProfile) (inserted bool, err error) {
	marketJSON, err := json.Marshal(profile.MarketData)
	if err != nil {
		return false, fmt.Errorf("failed to marshal market data: %w", err)
	}

	var created bool
	err = db.pool.QueryRow(ctx,
		`INSERT INTO regional_profiles (country, state, city, cost_of_living_index, salary_multiplier, market_data, source, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (country, state, city) DO UPDATE SET
		   cost_of_living_index = $4, salary_multiplier = $5, market_data = $6, source = $7, updated_at = NOW()
		 RETURNING (xmax = 0)`,
		profile.Region.Country, profile.Region.State, profile.Region.City,
		profile.CostOfLivingIndex, profile.SalaryMultiplier, marketJSON, profile.Metadata.Source,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert regional profile: %w", err)
	}
	return created, nil
}

// BulkUpsert writes a batch of blended profiles and summarizes the
// outcome. Profiles with an invalid multiplier are skipped rather than
// aborting the batch.
func (db *DB) BulkUpsert(ctx context.Context, profiles []types.RegionalProfile) (*regional.UpsertSummary, error) {
	summary := &regional.UpsertSummary{}
	for _, profile := range profiles {
		if profile.SalaryMultiplier <= 0 || profile.Region.City == "" {
			summary.Skipped++
			continue
		}
		inserted, err := db.UpsertProfile(ctx, profile)
		if err != nil {
			return nil, err
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}
	return summary, nil
}
