package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/geo"
	"github.com/jonathan/candidate-matcher/internal/textutil"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// locationBand maps a maximum distance in km to a score.
type locationBand struct {
	maxKm float64
	score int
}

var locationBands = []locationBand{
	{10, 100},
	{25, 80},
	{50, 60},
}

const (
	farLocationScore     = 20
	unknownLocationScore = 30
)

// ScoreLocation compares a candidate location with a requirement location.
// Remote or unrestricted requirements score 100. An unknown candidate location,
// or one the provider cannot resolve, scores 30 as insufficient data. Other
// provider errors are returned.
func ScoreLocation(ctx context.Context, provider geo.DistanceProvider, candidateLoc, requirementLoc string, remote bool) (types.CategoryScore, error) {
	if remote {
		return types.CategoryScore{Score: 100, Details: "Remote position"}, nil
	}

	req := textutil.Normalize(requirementLoc)
	if req == "" {
		return types.CategoryScore{Score: 100, Details: "No location restriction"}, nil
	}

	cand := textutil.Normalize(candidateLoc)
	if cand == "" {
		return types.CategoryScore{Score: unknownLocationScore, Details: types.NoDataDetails}, nil
	}

	if textutil.ContainsTerm(cand, req) || textutil.ContainsTerm(req, cand) {
		return types.CategoryScore{Score: 100, Details: "Same location"}, nil
	}

	if provider == nil {
		return types.CategoryScore{Score: unknownLocationScore, Details: types.NoDataDetails}, nil
	}

	km, err := provider.Distance(ctx, candidateLoc, requirementLoc)
	if errors.Is(err, geo.ErrUnknownLocation) {
		return types.CategoryScore{Score: unknownLocationScore, Details: types.NoDataDetails}, nil
	}
	if err != nil {
		return types.CategoryScore{}, fmt.Errorf("failed to compute distance: %w", err)
	}

	return types.CategoryScore{
		Score:   distanceScore(km),
		Details: fmt.Sprintf("%.0f km from %s", km, requirementLoc),
	}, nil
}

func distanceScore(km float64) int {
	for _, band := range locationBands {
		if km <= band.maxKm {
			return band.score
		}
	}
	return farLocationScore
}
