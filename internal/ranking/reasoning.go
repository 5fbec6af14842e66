package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	strengthThreshold = 80
	concernThreshold  = 50
	maxListedSkills   = 3
)

// generateReasoning describes the strengths and concerns behind a set of category scores.
func generateReasoning(scores types.CategoryScores) string {
	var parts []string

	// Strengths
	if scores.Skills.Score >= strengthThreshold {
		parts = append(parts, "Strong skills match")
	}
	if scores.Experience.Score >= strengthThreshold {
		parts = append(parts, "Relevant experience level")
	}
	if scores.Education.Score >= strengthThreshold {
		parts = append(parts, "Strong educational background")
	}
	if scores.Keywords.Score >= strengthThreshold {
		parts = append(parts, "High keyword relevance")
	}

	// Concerns
	if scores.Skills.Score < concernThreshold {
		parts = append(parts, "Limited skills match")
	}
	if scores.Experience.Score < concernThreshold {
		parts = append(parts, "Experience below requirements")
	}
	if scores.Education.Score < concernThreshold {
		parts = append(parts, "Education below requirements")
	}
	if scores.Location.Score < concernThreshold {
		parts = append(parts, "Location may be a concern")
	}

	if missing := firstN(scores.Skills.Missing, maxListedSkills); len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("Missing skills: %s", strings.Join(missing, ", ")))
	}

	if len(parts) == 0 {
		return "No notable strengths or concerns"
	}
	return strings.Join(parts, ". ")
}

// generateRecommendations returns suggestions in fixed category order: skills,
// experience, location.
func generateRecommendations(scores types.CategoryScores) []types.Recommendation {
	recs := make([]types.Recommendation, 0, 3)

	if scores.Skills.Score < 70 && len(scores.Skills.Missing) > 0 {
		recs = append(recs, types.Recommendation{
			Category:   types.CategorySkills,
			Priority:   types.PriorityHigh,
			Suggestion: fmt.Sprintf("Develop skills in: %s", strings.Join(firstN(scores.Skills.Missing, maxListedSkills), ", ")),
		})
	}
	if scores.Experience.Score < 60 {
		recs = append(recs, types.Recommendation{
			Category:   types.CategoryExperience,
			Priority:   types.PriorityMedium,
			Suggestion: "Consider flexibility on experience requirements or pair with a mentor",
		})
	}
	if scores.Location.Score < concernThreshold {
		recs = append(recs, types.Recommendation{
			Category:   types.CategoryLocation,
			Priority:   types.PriorityLow,
			Suggestion: "Discuss remote work or relocation options",
		})
	}
	return recs
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
