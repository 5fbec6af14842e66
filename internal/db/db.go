// Package db provides match score persistence on PostgreSQL or SQLite.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS match_scores (
	id             UUID PRIMARY KEY,
	candidate_id   TEXT NOT NULL,
	requirement_id TEXT NOT NULL,
	overall_score  INTEGER NOT NULL,
	match_level    TEXT NOT NULL,
	result         JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (candidate_id, requirement_id)
)`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ Store = (*DB)(nil)

// Connect establishes a connection pool to the database and ensures the
// match_scores table exists.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create match_scores table: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveMatchScore upserts a match score keyed by candidate and requirement.
func (db *DB) SaveMatchScore(ctx context.Context, score MatchScore) error {
	score = prepare(score)
	jsonBytes, err := json.Marshal(score.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_scores (id, candidate_id, requirement_id, overall_score, match_level, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (candidate_id, requirement_id) DO UPDATE
		 SET overall_score = $4, match_level = $5, result = $6, created_at = $7`,
		score.ID, score.CandidateID, score.RequirementID, score.OverallScore, string(score.MatchLevel), jsonBytes, score.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save match score %s/%s: %w", score.RequirementID, score.CandidateID, err)
	}
	return nil
}

// GetMatchScore retrieves the stored score for a candidate/requirement pair.
func (db *DB) GetMatchScore(ctx context.Context, candidateID, requirementID string) (*MatchScore, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, requirement_id, overall_score, match_level, result, created_at
		 FROM match_scores WHERE candidate_id = $1 AND requirement_id = $2`,
		candidateID, requirementID,
	)
	score, err := scanMatchScore(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match score: %w", err)
	}
	return score, nil
}

// ListMatchScores returns the scores stored for a requirement, best first.
func (db *DB) ListMatchScores(ctx context.Context, requirementID string, limit int) ([]MatchScore, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, requirement_id, overall_score, match_level, result, created_at
		 FROM match_scores WHERE requirement_id = $1
		 ORDER BY overall_score DESC, candidate_id ASC
		 LIMIT $2`,
		requirementID, listLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match scores: %w", err)
	}
	defer rows.Close()

	var scores []MatchScore
	for rows.Next() {
		score, err := scanMatchScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match score: %w", err)
		}
		scores = append(scores, *score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list match scores: %w", err)
	}
	return scores, nil
}

func scanMatchScore(row pgx.Row) (*MatchScore, error) {
	var (
		s       MatchScore
		level   string
		content []byte
	)
	if err := row.Scan(&s.ID, &s.CandidateID, &s.RequirementID, &s.OverallScore, &level, &content, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.MatchLevel = types.MatchLevel(level)
	if err := json.Unmarshal(content, &s.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring result: %w", err)
	}
	return &s, nil
}
