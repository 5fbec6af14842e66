// Package types provides type definitions for structured data used throughout the candidate-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// NoDataDetails is the Details value a category emits when its score rests on
// defaults rather than extracted evidence.
const NoDataDetails = "No data available"

// MatchPair records one required skill and the candidate skill that satisfied it.
type MatchPair struct {
	Required string `json:"required"`
	Found    string `json:"found"`
	Partial  bool   `json:"partial"`
}

// CategoryScore is the outcome of a single scoring category.
type CategoryScore struct {
	Score   int         `json:"score"`             // 0-100
	Details string      `json:"details"`           // Human-readable explanation
	Matched []MatchPair `json:"matched,omitempty"` // Only populated by the skills category
	Missing []string    `json:"missing,omitempty"`
}

// HasData reports whether the score was backed by extracted evidence.
func (c CategoryScore) HasData() bool {
	return c.Details != NoDataDetails
}

// CategoryScores holds the six category results. The set is closed; use All
// when iterating.
type CategoryScores struct {
	Skills     CategoryScore `json:"skills"`
	Experience CategoryScore `json:"experience"`
	Education  CategoryScore `json:"education"`
	Keywords   CategoryScore `json:"keywords"`
	Location   CategoryScore `json:"location"`
	Industry   CategoryScore `json:"industry"`
}

// NamedScore pairs a category name with its score.
type NamedScore struct {
	Name  string
	Score CategoryScore
}

// All returns the six categories in their canonical order.
func (c CategoryScores) All() [6]NamedScore {
	return [6]NamedScore{
		{Name: CategorySkills, Score: c.Skills},
		{Name: CategoryExperience, Score: c.Experience},
		{Name: CategoryEducation, Score: c.Education},
		{Name: CategoryKeywords, Score: c.Keywords},
		{Name: CategoryLocation, Score: c.Location},
		{Name: CategoryIndustry, Score: c.Industry},
	}
}

// Category names
const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategoryKeywords   = "keywords"
	CategoryLocation   = "location"
	CategoryIndustry   = "industry"
)

// MatchLevel is the discrete band of an overall score.
type MatchLevel string

const (
	MatchExcellent MatchLevel = "excellent"
	MatchGood      MatchLevel = "good"
	MatchFair      MatchLevel = "fair"
	MatchPoor      MatchLevel = "poor"
	MatchVeryPoor  MatchLevel = "very_poor"
)

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is an actionable suggestion tied to a category.
type Recommendation struct {
	Category   string   `json:"category"`
	Priority   Priority `json:"priority"`
	Suggestion string   `json:"suggestion"`
}

// ScoringResult is the terminal value of a scoring call.
type ScoringResult struct {
	OverallScore    int              `json:"overall_score"`
	CategoryScores  CategoryScores   `json:"category_scores"`
	MatchLevel      MatchLevel       `json:"match_level"`
	Reasoning       string           `json:"reasoning"`
	Recommendations []Recommendation `json:"recommendations"`
	Confidence      int              `json:"confidence"`
	Timestamp       time.Time        `json:"timestamp"`
}
