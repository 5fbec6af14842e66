package ranking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/experience"
	"github.com/jonathan/candidate-matcher/internal/extract"
	"github.com/jonathan/candidate-matcher/internal/geo"
	"github.com/jonathan/candidate-matcher/internal/nlp"
	"github.com/jonathan/candidate-matcher/internal/skills"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Engine scores candidate records against requirement records. It holds only
// read-only collaborators; every call builds its own intermediate state, so an
// Engine is safe for concurrent use.
type Engine struct {
	distance geo.DistanceProvider
	tagger   nlp.Tagger
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithDistanceProvider sets the provider used by the location scorer.
func WithDistanceProvider(p geo.DistanceProvider) Option {
	return func(e *Engine) {
		if p != nil {
			e.distance = p
		}
	}
}

// WithTagger sets the noun tagger used for salient-term extraction.
func WithTagger(t nlp.Tagger) Option {
	return func(e *Engine) {
		if t != nil {
			e.tagger = t
		}
	}
}

// WithLogger sets the logger. Scoring details are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the clock used to timestamp results.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine returns an Engine using the embedded gazetteer, the prose tagger
// and a no-op logger unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		distance: geo.NewGazetteer(),
		tagger:   nlp.NewProseTagger(),
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine() })

// ScoreCandidate scores candidate against requirement with the default Engine.
func ScoreCandidate(ctx context.Context, candidate, requirement any) (types.ScoringResult, error) {
	return defaultEngine().ScoreCandidate(ctx, candidate, requirement)
}

// ScoreCandidate scores candidate against requirement. Records may be strings,
// maps or anything extract.Parse accepts. Any internal failure in a category
// aborts the call with a *ScoringError and a zero result.
func (e *Engine) ScoreCandidate(ctx context.Context, candidate, requirement any) (types.ScoringResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return types.ScoringResult{}, &ScoringError{Message: "scoring cancelled", Cause: err}
	}

	cand, err := extract.Parse(candidate)
	if err != nil {
		e.logger.Debug("candidate record partially decoded", zap.Error(err))
	}
	req, err := extract.Parse(requirement)
	if err != nil {
		e.logger.Debug("requirement record partially decoded", zap.Error(err))
	}

	var scores types.CategoryScores
	steps := []struct {
		category string
		run      func() error
	}{
		{types.CategorySkills, func() error {
			scores.Skills = skills.Match(skills.Extract(cand.Text), skills.Extract(req.Text))
			return nil
		}},
		{types.CategoryExperience, func() error {
			scores.Experience = experience.Evaluate(cand.Text, req.Text)
			return nil
		}},
		{types.CategoryEducation, func() error {
			scores.Education = ScoreEducation(AnalyzeEducation(cand.Text), AnalyzeRequiredEducation(req.Text))
			return nil
		}},
		{types.CategoryKeywords, func() (err error) {
			scores.Keywords, err = ScoreKeywords(e.tagger, cand.Text, req.Text)
			return err
		}},
		{types.CategoryLocation, func() (err error) {
			scores.Location, err = ScoreLocation(ctx, e.distance, cand.Location, req.Location, req.Remote)
			return err
		}},
		{types.CategoryIndustry, func() error {
			scores.Industry = ScoreIndustry(
				Industries(joinText(cand.Text, cand.Industry)),
				Industries(joinText(req.Text, req.Industry)))
			return nil
		}},
	}

	for _, step := range steps {
		if err := guard(step.category, step.run); err != nil {
			e.logger.Warn("scoring failed", zap.String("category", step.category), zap.Error(err))
			return types.ScoringResult{}, err
		}
	}

	overall := Overall(scores)
	result := types.ScoringResult{
		OverallScore:    overall,
		CategoryScores:  scores,
		MatchLevel:      Level(overall),
		Reasoning:       generateReasoning(scores),
		Recommendations: generateRecommendations(scores),
		Confidence:      Confidence(scores),
		Timestamp:       e.now(),
	}

	e.logger.Debug("candidate scored",
		zap.Int("skills", scores.Skills.Score),
		zap.Int("experience", scores.Experience.Score),
		zap.Int("education", scores.Education.Score),
		zap.Int("keywords", scores.Keywords.Score),
		zap.Int("location", scores.Location.Score),
		zap.Int("industry", scores.Industry.Score),
		zap.Int("overall_score", overall),
		zap.String("match_level", string(result.MatchLevel)),
		zap.Int("confidence", result.Confidence),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}

// guard runs one category computation, converting errors and panics into a *ScoringError.
func guard(category string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ScoringError{Category: category, Message: "unexpected panic", Cause: fmt.Errorf("%v", r)}
		}
	}()
	if runErr := fn(); runErr != nil {
		return &ScoringError{Category: category, Message: "category computation failed", Cause: runErr}
	}
	return nil
}

func joinText(parts ...string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}
