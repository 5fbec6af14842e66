package experience

import (
	"testing"

	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.ExperienceProfile
	}{
		{
			name:     "years set the band",
			text:     "5 years experience in React, Node.js, AWS",
			expected: types.ExperienceProfile{Years: 5, Level: types.LevelSenior, RelevantDomains: []string{"web"}},
		},
		{
			name:     "keyword overrides range",
			text:     "Lead engineer, 3 yrs exp",
			expected: types.ExperienceProfile{Years: 3, Level: types.LevelSenior},
		},
		{
			name:     "maximum years wins",
			text:     "2 years of experience with Docker, 12 years of experience overall",
			expected: types.ExperienceProfile{Years: 12, Level: types.LevelExecutive, RelevantDomains: []string{"devops"}},
		},
		{
			name:     "keywords only",
			text:     "Junior iOS developer",
			expected: types.ExperienceProfile{Level: types.LevelEntry, RelevantDomains: []string{"mobile"}},
		},
		{
			name:     "years without qualifier are ignored",
			text:     "Founded 10 years ago",
			expected: types.ExperienceProfile{},
		},
		{
			name:     "empty",
			text:     "",
			expected: types.ExperienceProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Analyze(tt.text))
		})
	}
}

func TestAnalyzeRequirement(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Requirement
	}{
		{
			name:     "years and level",
			text:     "Senior developer, 5+ years, React, AWS, Computer Science degree required",
			expected: Requirement{Years: 5, Level: types.LevelSenior},
		},
		{
			name:     "executive with domain",
			text:     "Director of Mobile Engineering, 10 years",
			expected: Requirement{Years: 10, Level: types.LevelExecutive, Domain: "mobile"},
		},
		{
			name:     "first domain wins",
			text:     "Full-stack engineer with DevOps exposure",
			expected: Requirement{Domain: "web"},
		},
		{
			name:     "nothing stated",
			text:     "Friendly team player",
			expected: Requirement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnalyzeRequirement(tt.text))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		candidate types.ExperienceProfile
		req       Requirement
		expected  int
	}{
		{"meets years, same level", types.ExperienceProfile{Years: 5, Level: types.LevelSenior}, Requirement{Years: 5, Level: types.LevelSenior}, 70},
		{"surplus years", types.ExperienceProfile{Years: 9, Level: types.LevelSenior}, Requirement{Years: 5, Level: types.LevelSenior}, 78},
		{"surplus capped, overqualified", types.ExperienceProfile{Years: 20, Level: types.LevelExecutive}, Requirement{Years: 2, Level: types.LevelEntry}, 80},
		{"short one level below", types.ExperienceProfile{Years: 2, Level: types.LevelMid}, Requirement{Years: 5, Level: types.LevelSenior}, 40},
		{"shortfall capped, two below", types.ExperienceProfile{Years: 1, Level: types.LevelEntry}, Requirement{Years: 10, Level: types.LevelSenior}, 10},
		{"domain bonus", types.ExperienceProfile{Years: 5, Level: types.LevelSenior, RelevantDomains: []string{"web"}}, Requirement{Years: 5, Level: types.LevelSenior, Domain: "web"}, 90},
		{"clamped at 100", types.ExperienceProfile{Years: 15, Level: types.LevelSenior, RelevantDomains: []string{"web"}}, Requirement{Years: 5, Level: types.LevelSenior, Domain: "web"}, 100},
		{"nothing required", types.ExperienceProfile{Years: 5, Level: types.LevelSenior}, Requirement{}, 50},
		{"empty candidate", types.ExperienceProfile{}, Requirement{Years: 5, Level: types.LevelSenior}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.candidate, tt.req)
			assert.Equal(t, tt.expected, score.Score)
			assert.GreaterOrEqual(t, score.Score, 0)
			assert.LessOrEqual(t, score.Score, 100)
		})
	}
}

func TestScore_InsufficientData(t *testing.T) {
	assert.Equal(t, types.NoDataDetails, Score(types.ExperienceProfile{}, Requirement{Years: 3}).Details)
	assert.Equal(t, types.NoDataDetails, Score(types.ExperienceProfile{Years: 3}, Requirement{}).Details)

	score := Score(types.ExperienceProfile{Years: 3}, Requirement{Years: 3, Domain: "web"})
	assert.Equal(t, "Candidate: 3 years; required: 3+ years, web domain", score.Details)
}

func TestEvaluate_Scenario(t *testing.T) {
	score := Evaluate(
		"5 years experience in React, Node.js, AWS, Bachelor's in Computer Science",
		"Senior developer, 5+ years, React, AWS, Computer Science degree required",
	)
	assert.GreaterOrEqual(t, score.Score, 70)
	assert.Equal(t, "Candidate: 5 years (senior); required: 5+ years (senior)", score.Details)
}

func TestEvaluate_HugeYearCounts(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  int
	}{
		{"max int", "9223372036854775807 years of experience", 70},
		{"beyond int range", "99999999999999999999999 years of experience", 70},
		{"just above the cap", "150 years of experience", 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.candidate, "1 year")
			assert.Equal(t, tt.expected, score.Score)
		})
	}

	assert.Equal(t, maxStatedYears, Analyze("9223372036854775807 years of experience").Years)
}

func TestScore_SaturatesYearDeltas(t *testing.T) {
	huge := int(^uint(0) >> 1)

	assert.Equal(t, 70, Score(types.ExperienceProfile{Years: huge}, Requirement{Years: 1}).Score)
	assert.Equal(t, 20, Score(types.ExperienceProfile{Years: 1}, Requirement{Years: huge}).Score)
}
