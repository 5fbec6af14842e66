package ranking

import (
	"math"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Confidence returns the percentage of categories backed by extracted data.
func Confidence(scores types.CategoryScores) int {
	all := scores.All()
	backed := 0
	for _, s := range all {
		if s.Score.HasData() {
			backed++
		}
	}
	return int(math.Round(float64(backed) / float64(len(all)) * 100))
}
