package ranking

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Candidate is one record submitted for batch ranking.
type Candidate struct {
	ID     string `json:"id"`
	Record any    `json:"record"`
}

// RankedCandidate is a scored candidate with its 1-based position.
type RankedCandidate struct {
	Rank   int                 `json:"rank"`
	ID     string              `json:"id"`
	Result types.ScoringResult `json:"result"`
}

// RankCandidates scores every candidate against requirement, at most
// concurrency at a time (unbounded when concurrency <= 0), and orders them by
// overall score, highest first. Ties keep input order. The first failure
// cancels the remaining work.
func (e *Engine) RankCandidates(ctx context.Context, requirement any, candidates []Candidate, concurrency int) ([]RankedCandidate, error) {
	results := make([]types.ScoringResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, c := range candidates {
		g.Go(func() error {
			result, err := e.ScoreCandidate(gCtx, c.Record, requirement)
			if err != nil {
				return fmt.Errorf("failed to score candidate %q: %w", c.ID, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = RankedCandidate{ID: c.ID, Result: results[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.OverallScore > ranked[j].Result.OverallScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}
