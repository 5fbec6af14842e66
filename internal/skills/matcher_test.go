package skills

import (
	"strings"
	"testing"

	"github.com/jonathan/candidate-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "resume sentence",
			text:     "5 years experience in React, Node.js, AWS, Bachelor's in Computer Science",
			expected: []string{"aws", "react", "node.js"},
		},
		{
			name:     "requirement sentence",
			text:     "Senior developer, 5+ years, React, AWS, Computer Science degree required",
			expected: []string{"aws", "react"},
		},
		{
			name:     "aliases resolve to dictionary names",
			text:     "Worked with K8s and ReactJS on Postgres",
			expected: []string{"postgresql", "kubernetes", "react"},
		},
		{
			name:     "java is not found inside javascript",
			text:     "JavaScript developer",
			expected: []string{"javascript"},
		},
		{
			name:     "js alias is not found inside node.js",
			text:     "Node.js",
			expected: []string{"node.js"},
		},
		{
			name:     "symbol skills",
			text:     "C++ and C# services",
			expected: []string{"c++", "c#"},
		},
		{
			name:     "technology phrases appended",
			text:     "Python, Kafka and asp.net",
			expected: []string{"python", "kafka", "asp.net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.text))
		})
	}
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("nothing technical here"))
}

func TestMatch_NoRequiredSkills(t *testing.T) {
	score := Match([]string{"go"}, nil)
	assert.Equal(t, 50, score.Score)
	assert.Equal(t, types.NoDataDetails, score.Details)
	assert.Nil(t, score.Matched)
	assert.Nil(t, score.Missing)
}

func TestMatch_AllFull(t *testing.T) {
	score := Match([]string{"aws", "react", "node.js"}, []string{"aws", "react"})
	assert.Equal(t, 100, score.Score)
	assert.Equal(t, "Matched 2 of 2 required skills", score.Details)
	assert.Equal(t, []types.MatchPair{
		{Required: "aws", Found: "aws"},
		{Required: "react", Found: "react"},
	}, score.Matched)
	assert.Empty(t, score.Missing)
}

func TestMatch_PartialAndMissing(t *testing.T) {
	score := Match([]string{"javascript", "docker"}, []string{"docker", "typescript", "rust"})

	// (1 + 0.7) / 3 = 0.5667
	assert.Equal(t, 57, score.Score)
	assert.Equal(t, "Matched 2 of 3 required skills (1 partial)", score.Details)
	require.Len(t, score.Matched, 2)
	assert.Equal(t, types.MatchPair{Required: "typescript", Found: "javascript", Partial: true}, score.Matched[1])
	assert.Equal(t, []string{"rust"}, score.Missing)
}

func TestMatch_FullBeatsEarlierPartial(t *testing.T) {
	score := Match([]string{"javascript", "typescript"}, []string{"typescript"})
	require.Len(t, score.Matched, 1)
	assert.False(t, score.Matched[0].Partial)
	assert.Equal(t, "typescript", score.Matched[0].Found)
}

func TestMatch_NoCandidateSkills(t *testing.T) {
	score := Match(nil, []string{"go", "sql"})
	assert.Equal(t, 0, score.Score)
	assert.Equal(t, types.NoDataDetails, score.Details)
	assert.Equal(t, []string{"go", "sql"}, score.Missing)
}

func TestIsFullMatch(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"React", "react", true},
		{"node.js", "nodejs", true},
		{"spring", "spring boot", true},
		{"postgresql", "postgres", true},
		{"c++", "c#", false},
		{"aws", "azure", false},
		{"go", "golang", false},
		{"", "go", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFullMatch(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("go", "go"))
	assert.Equal(t, 0.0, Similarity("", "go"))
	assert.InDelta(t, 0.822, Similarity("go", "golang"), 0.01)
}

func TestMatch_MonotonicInCandidateSkills(t *testing.T) {
	required := Extract("Python, React, AWS, Docker, PostgreSQL and Kafka")
	require.NotEmpty(t, required)

	additions := []string{"python", "react", "aws", "docker", "postgresql", "kafka"}
	var text []string
	previous := Match(Extract(""), required).Score
	for _, add := range additions {
		text = append(text, add)
		current := Match(Extract(strings.Join(text, ", ")), required).Score
		assert.GreaterOrEqual(t, current, previous, "adding %q lowered the score", add)
		previous = current
	}
	assert.Equal(t, 100, previous)
}

func TestMatch_ScoreBounds(t *testing.T) {
	inputs := [][]string{nil, {}, {"a"}, {"go", "go", "go"}}
	for _, candidate := range inputs {
		for _, required := range inputs {
			score := Match(candidate, required)
			assert.GreaterOrEqual(t, score.Score, 0)
			assert.LessOrEqual(t, score.Score, 100)
		}
	}
}
