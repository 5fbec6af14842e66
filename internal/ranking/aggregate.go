package ranking

import "github.com/jonathan/candidate-matcher/internal/types"

// Category weights, in percent
const (
	skillsWeightPercent     = 30
	experienceWeightPercent = 25
	educationWeightPercent  = 15
	keywordsWeightPercent   = 20
	locationWeightPercent   = 5
	industryWeightPercent   = 5

	weightTotalPercent = skillsWeightPercent + experienceWeightPercent + educationWeightPercent +
		keywordsWeightPercent + locationWeightPercent + industryWeightPercent
)

// The build fails unless the weights sum to exactly 100%: a negative constant
// does not convert to uint8.
const (
	_ = uint8(weightTotalPercent - 100)
	_ = uint8(100 - weightTotalPercent)
)

// CategoryWeight is the share of one category in the overall score.
type CategoryWeight struct {
	Name   string
	Weight float64
}

// Weights returns the category weights as fractions, in category order.
func Weights() [6]CategoryWeight {
	return [6]CategoryWeight{
		{Name: types.CategorySkills, Weight: skillsWeightPercent / 100.0},
		{Name: types.CategoryExperience, Weight: experienceWeightPercent / 100.0},
		{Name: types.CategoryEducation, Weight: educationWeightPercent / 100.0},
		{Name: types.CategoryKeywords, Weight: keywordsWeightPercent / 100.0},
		{Name: types.CategoryLocation, Weight: locationWeightPercent / 100.0},
		{Name: types.CategoryIndustry, Weight: industryWeightPercent / 100.0},
	}
}

// Overall returns round(sum(weight * score)) over the six categories. The sum is
// taken in integer percent so rounding is exact.
func Overall(scores types.CategoryScores) int {
	weighted := skillsWeightPercent*clampScore(scores.Skills.Score) +
		experienceWeightPercent*clampScore(scores.Experience.Score) +
		educationWeightPercent*clampScore(scores.Education.Score) +
		keywordsWeightPercent*clampScore(scores.Keywords.Score) +
		locationWeightPercent*clampScore(scores.Location.Score) +
		industryWeightPercent*clampScore(scores.Industry.Score)
	return (weighted + 50) / 100
}

// Level maps an overall score to its match level.
func Level(score int) types.MatchLevel {
	switch {
	case score >= 85:
		return types.MatchExcellent
	case score >= 70:
		return types.MatchGood
	case score >= 55:
		return types.MatchFair
	case score >= 40:
		return types.MatchPoor
	default:
		return types.MatchVeryPoor
	}
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
