package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func TestWeights_SumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range Weights() {
		sum += w.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, 100, weightTotalPercent)
}

func TestWeights_CategoryOrder(t *testing.T) {
	scores := types.CategoryScores{}.All()
	for i, w := range Weights() {
		assert.Equal(t, scores[i].Name, w.Name)
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name     string
		scores   types.CategoryScores
		expected int
	}{
		{"all zero", types.CategoryScores{}, 0},
		{"all hundred", uniformScores(100), 100},
		{"all fifty", uniformScores(50), 50},
		{
			"weighted",
			types.CategoryScores{
				Skills:     types.CategoryScore{Score: 100},
				Experience: types.CategoryScore{Score: 70},
				Education:  types.CategoryScore{Score: 100},
				Keywords:   types.CategoryScore{Score: 56},
				Location:   types.CategoryScore{Score: 100},
				Industry:   types.CategoryScore{Score: 50},
			},
			81,
		},
		{"rounds half up", types.CategoryScores{Location: types.CategoryScore{Score: 10}}, 1},
		{"out of range inputs are clamped", uniformScores(150), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overall(tt.scores))
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score    int
		expected types.MatchLevel
	}{
		{100, types.MatchExcellent},
		{85, types.MatchExcellent},
		{84, types.MatchGood},
		{70, types.MatchGood},
		{69, types.MatchFair},
		{55, types.MatchFair},
		{54, types.MatchPoor},
		{40, types.MatchPoor},
		{39, types.MatchVeryPoor},
		{0, types.MatchVeryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Level(tt.score), "score %d", tt.score)
	}
}

func uniformScores(score int) types.CategoryScores {
	s := types.CategoryScore{Score: score}
	return types.CategoryScores{Skills: s, Experience: s, Education: s, Keywords: s, Location: s, Industry: s}
}
