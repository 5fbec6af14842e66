package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func TestKey(t *testing.T) {
	a, err := Key(map[string]any{"summary": "go developer", "location": "Austin"}, "Senior Go role")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a, KeyPrefix))
	assert.Len(t, a, len(KeyPrefix)+64)

	// Map key order does not matter.
	b, err := Key(map[string]any{"location": "Austin", "summary": "go developer"}, "Senior Go role")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Key("Senior Go role", map[string]any{"summary": "go developer", "location": "Austin"})
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "swapping candidate and requirement changes the key")
}

func TestKey_Unmarshalable(t *testing.T) {
	_, err := Key(make(chan int), "x")
	assert.Error(t, err)
	_, err = Key("x", func() {})
	assert.Error(t, err)
}

func TestNew_RequiresAddress(t *testing.T) {
	_, err := New(context.Background(), "", time.Minute)
	assert.Error(t, err)
}

func TestIntegration_ResultCache(t *testing.T) {
	addr := os.Getenv("MATCH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping integration test: MATCH_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	c, err := New(ctx, addr, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	candidate := map[string]any{"summary": "candidate " + uuid.NewString()}
	requirement := "5+ years Go"

	_, err = c.Get(ctx, candidate, requirement)
	assert.ErrorIs(t, err, ErrMiss)

	result := types.ScoringResult{
		OverallScore: 64,
		MatchLevel:   types.MatchFair,
		Reasoning:    "No notable strengths or concerns",
		Confidence:   50,
		Timestamp:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Set(ctx, candidate, requirement, result))

	got, err := c.Get(ctx, candidate, requirement)
	require.NoError(t, err)
	assert.Equal(t, 64, got.OverallScore)
	assert.Equal(t, types.MatchFair, got.MatchLevel)
	assert.True(t, result.Timestamp.Equal(got.Timestamp))
}
