package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// ErrNotFound is returned when no match score exists for a candidate/requirement pair.
var ErrNotFound = errors.New("match score not found")

// DefaultListLimit caps ListMatchScores when the caller passes no limit.
const DefaultListLimit = 100

// MatchScore represents a persisted scoring result for one candidate against one requirement
type MatchScore struct {
	ID            uuid.UUID           `json:"id"`
	CandidateID   string              `json:"candidate_id"`
	RequirementID string              `json:"requirement_id"`
	OverallScore  int                 `json:"overall_score"`
	MatchLevel    types.MatchLevel    `json:"match_level"`
	Result        types.ScoringResult `json:"result"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NewMatchScore builds a MatchScore from a scoring result.
func NewMatchScore(candidateID, requirementID string, result types.ScoringResult) MatchScore {
	return MatchScore{
		CandidateID:   candidateID,
		RequirementID: requirementID,
		OverallScore:  result.OverallScore,
		MatchLevel:    result.MatchLevel,
		Result:        result,
		CreatedAt:     result.Timestamp,
	}
}

// Store persists match scores. Saving the same candidate/requirement pair twice
// replaces the earlier result.
type Store interface {
	SaveMatchScore(ctx context.Context, score MatchScore) error
	GetMatchScore(ctx context.Context, candidateID, requirementID string) (*MatchScore, error)
	ListMatchScores(ctx context.Context, requirementID string, limit int) ([]MatchScore, error)
	Close()
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

func prepare(score MatchScore) MatchScore {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	if score.CreatedAt.IsZero() {
		score.CreatedAt = time.Now()
	}
	score.CreatedAt = score.CreatedAt.UTC()
	return score
}
