package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/cache"
	"github.com/jonathan/candidate-matcher/internal/db"
	"github.com/jonathan/candidate-matcher/internal/logging"
	"github.com/jonathan/candidate-matcher/internal/ranking"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	maxBodyBytes     = 1 << 20
	maxLogFieldRunes = 200
)

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	CandidateID   string `json:"candidate_id,omitempty" validate:"omitempty,max=128"`
	RequirementID string `json:"requirement_id,omitempty" validate:"omitempty,max=128"`
	Candidate     any    `json:"candidate" validate:"required"`
	Requirement   any    `json:"requirement" validate:"required"`
}

// RankRequest represents the request body for /rank
type RankRequest struct {
	RequirementID string                `json:"requirement_id,omitempty" validate:"omitempty,max=128"`
	Requirement   any                   `json:"requirement" validate:"required"`
	Candidates    []RankCandidateRecord `json:"candidates" validate:"required,min=1,max=500,dive"`
}

// RankCandidateRecord is one candidate in a RankRequest
type RankCandidateRecord struct {
	ID     string `json:"id" validate:"required,max=128"`
	Record any    `json:"record" validate:"required"`
}

// RankResponse represents the response for /rank
type RankResponse struct {
	Ranked []ranking.RankedCandidate `json:"ranked"`
}

// ScoresResponse represents the response for GET /scores/{requirement_id}
type ScoresResponse struct {
	RequirementID string          `json:"requirement_id"`
	Scores        []db.MatchScore `json:"scores"`
}

// handleScore scores one candidate against one requirement
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := r.Context()
	result, cached, err := s.score(ctx, req.Candidate, req.Requirement)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if cached {
		w.Header().Set("X-Cache", "hit")
	}

	if s.store != nil && req.CandidateID != "" && req.RequirementID != "" {
		if err := s.store.SaveMatchScore(ctx, db.NewMatchScore(req.CandidateID, req.RequirementID, result)); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// score returns the cached result for the pair when there is one, otherwise
// scores it and fills the cache. Cache failures are logged and ignored.
func (s *Server) score(ctx context.Context, candidate, requirement any) (types.ScoringResult, bool, error) {
	if s.cache != nil {
		result, err := s.cache.Get(ctx, candidate, requirement)
		if err == nil {
			return result, true, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("cache read failed", zap.Error(err))
		}
	}

	result, err := s.engine.ScoreCandidate(ctx, candidate, requirement)
	if err != nil {
		return types.ScoringResult{}, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, candidate, requirement, result); err != nil {
			s.logger.Warn("cache write failed", zap.Error(err))
		}
	}
	return result, false, nil
}

// handleRank scores and orders a batch of candidates
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	candidates := make([]ranking.Candidate, len(req.Candidates))
	for i, c := range req.Candidates {
		candidates[i] = ranking.Candidate{ID: c.ID, Record: c.Record}
	}

	ctx := r.Context()
	ranked, err := s.engine.RankCandidates(ctx, req.Requirement, candidates, s.concurrency)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if s.store != nil && req.RequirementID != "" {
		for _, rc := range ranked {
			if err := s.store.SaveMatchScore(ctx, db.NewMatchScore(rc.ID, req.RequirementID, rc.Result)); err != nil {
				s.fail(w, r, err)
				return
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{Ranked: ranked})
}

// handleListScores returns stored scores for a requirement, best first
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, &ErrStoreDisabled{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.fail(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	requirementID := r.PathValue("requirement_id")
	scores, err := s.store.ListMatchScores(r.Context(), requirementID, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if scores == nil {
		scores = []db.MatchScore{}
	}

	s.jsonResponse(w, http.StatusOK, ScoresResponse{RequirementID: requirementID, Scores: scores})
}

// handleGetScore returns the stored score for one candidate/requirement pair
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, &ErrStoreDisabled{})
		return
	}

	score, err := s.store.GetMatchScore(r.Context(), r.PathValue("candidate_id"), r.PathValue("requirement_id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if err := s.validator.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError converts validator errors into an ErrValidation for the first failing field.
func validationError(err error) *ErrValidation {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &ErrValidation{Field: fe.Namespace(), Message: fmt.Sprintf("failed '%s' validation", fe.Tag())}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}

// fail logs err and writes it as a JSON error with the mapped status.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("request failed",
			zap.String("path", r.URL.Path),
			zap.String("error", logging.Truncate(err.Error(), maxLogFieldRunes)),
		)
	}
	s.errorResponse(w, status, err.Error())
}

var _ ResultCache = (*cache.ResultCache)(nil)
