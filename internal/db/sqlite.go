package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS match_scores (
	id             TEXT PRIMARY KEY,
	candidate_id   TEXT NOT NULL,
	requirement_id TEXT NOT NULL,
	overall_score  INTEGER NOT NULL,
	match_level    TEXT NOT NULL,
	result         TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	UNIQUE (candidate_id, requirement_id)
)`

// SQLite stores match scores in a local SQLite file.
type SQLite struct {
	pool *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite wants a single writer
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := pool.ExecContext(ctx, sqliteSchema); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to create match_scores table: %w", err)
	}

	return &SQLite{pool: pool}, nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() {
	if s.pool != nil {
		_ = s.pool.Close()
	}
}

// SaveMatchScore upserts a match score keyed by candidate and requirement.
func (s *SQLite) SaveMatchScore(ctx context.Context, score MatchScore) error {
	score = prepare(score)
	jsonBytes, err := json.Marshal(score.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring result: %w", err)
	}

	_, err = s.pool.ExecContext(ctx,
		`INSERT INTO match_scores (id, candidate_id, requirement_id, overall_score, match_level, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (candidate_id, requirement_id) DO UPDATE
		 SET overall_score = excluded.overall_score, match_level = excluded.match_level,
		     result = excluded.result, created_at = excluded.created_at`,
		score.ID.String(), score.CandidateID, score.RequirementID, score.OverallScore,
		string(score.MatchLevel), string(jsonBytes), score.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save match score %s/%s: %w", score.RequirementID, score.CandidateID, err)
	}
	return nil
}

// GetMatchScore retrieves the stored score for a candidate/requirement pair.
func (s *SQLite) GetMatchScore(ctx context.Context, candidateID, requirementID string) (*MatchScore, error) {
	row := s.pool.QueryRowContext(ctx,
		`SELECT id, candidate_id, requirement_id, overall_score, match_level, result, created_at
		 FROM match_scores WHERE candidate_id = ? AND requirement_id = ?`,
		candidateID, requirementID,
	)
	score, err := scanSQLiteScore(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match score: %w", err)
	}
	return score, nil
}

// ListMatchScores returns the scores stored for a requirement, best first.
func (s *SQLite) ListMatchScores(ctx context.Context, requirementID string, limit int) ([]MatchScore, error) {
	rows, err := s.pool.QueryContext(ctx,
		`SELECT id, candidate_id, requirement_id, overall_score, match_level, result, created_at
		 FROM match_scores WHERE requirement_id = ?
		 ORDER BY overall_score DESC, candidate_id ASC
		 LIMIT ?`,
		requirementID, listLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match scores: %w", err)
	}
	defer rows.Close()

	var scores []MatchScore
	for rows.Next() {
		score, err := scanSQLiteScore(rows)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteScore(row rowScanner) (*MatchScore, error) {
	var (
		s                  MatchScore
		id, level, content string
		createdAt          string
	)
	if err := row.Scan(&id, &s.CandidateID, &s.RequirementID, &s.OverallScore, &level, &content, &createdAt); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid match score id %q: %w", id, err)
	}
	s.ID = parsedID
	s.MatchLevel = types.MatchLevel(level)

	if s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	if err := json.Unmarshal([]byte(content), &s.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring result: %w", err)
	}
	return &s, nil
}
