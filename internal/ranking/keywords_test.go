package ranking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-matcher/internal/nlp"
	"github.com/jonathan/candidate-matcher/internal/types"
)

func fixedNouns(nouns ...string) nlp.Tagger {
	return nlp.TaggerFunc(func(string) ([]string, error) { return nouns, nil })
}

func TestSalientTerms(t *testing.T) {
	terms, err := SalientTerms(fixedNouns("Developer", "go", "APIs", "developer", "'s"), "Developer building APIs with Kafka")
	require.NoError(t, err)
	assert.Equal(t, []string{"developer", "apis", "kafka"}, terms)
}

func TestSalientTerms_CappedAtTwenty(t *testing.T) {
	var nouns []string
	for i := 0; i < 30; i++ {
		nouns = append(nouns, fmt.Sprintf("term%02d", i))
	}

	terms, err := SalientTerms(fixedNouns(nouns...), "")
	require.NoError(t, err)
	require.Len(t, terms, 20)
	assert.Equal(t, "term00", terms[0])
	assert.Equal(t, "term19", terms[19])
}

func TestScoreKeywords_Scenario(t *testing.T) {
	score, err := ScoreKeywords(tokenTagger(), scenarioCandidate, scenarioRequirement)
	require.NoError(t, err)

	assert.Equal(t, 56, score.Score)
	assert.Equal(t, "Covered 5 of 9 key terms", score.Details)
	assert.Equal(t, []string{"senior", "developer", "degree", "required"}, score.Missing)
}

func TestScoreKeywords_Ratios(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		requirement string
		expected    int
	}{
		{"candidate repeats term, capped", "kafka kafka kafka", "kafka", 100},
		{"candidate mentions term less often", "kafka", "kafka kafka", 50},
		{"candidate lacks term", "python", "kafka", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ScoreKeywords(fixedNouns("kafka"), tt.candidate, tt.requirement)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score.Score)
		})
	}
}

func TestScoreKeywords_NoTerms(t *testing.T) {
	score, err := ScoreKeywords(fixedNouns(), "anything", "we are nice")
	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
	assert.Equal(t, types.NoDataDetails, score.Details)
}

func TestScoreKeywords_UncomputableTermsSkipped(t *testing.T) {
	// "phantom" never occurs in the requirement, so its weight there is zero.
	score, err := ScoreKeywords(fixedNouns("phantom", "kafka"), "kafka", "kafka")
	require.NoError(t, err)
	assert.Equal(t, 100, score.Score)
	assert.Equal(t, "Covered 1 of 1 key terms", score.Details)
	assert.Empty(t, score.Missing)

	score, err = ScoreKeywords(fixedNouns("phantom"), "phantom", "nothing here")
	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
	assert.Equal(t, types.NoDataDetails, score.Details)
}

func TestScoreKeywords_EmptyCandidate(t *testing.T) {
	score, err := ScoreKeywords(fixedNouns("kafka"), "", "kafka")
	require.NoError(t, err)
	assert.Equal(t, 0, score.Score)
	assert.Equal(t, types.NoDataDetails, score.Details)
	assert.Equal(t, []string{"kafka"}, score.Missing)
}

func TestScoreKeywords_TaggerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ScoreKeywords(nlp.TaggerFunc(func(string) ([]string, error) { return nil, boom }), "a", "b")
	assert.ErrorIs(t, err, boom)
}
