package ranking

import (
	"time"

	"github.com/jonathan/candidate-matcher/internal/nlp"
	"github.com/jonathan/candidate-matcher/internal/textutil"
)

const (
	scenarioCandidate   = "5 years experience in React, Node.js, AWS, Bachelor's in Computer Science"
	scenarioRequirement = "Senior developer, 5+ years, React, AWS, Computer Science degree required"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

// tokenTagger treats every token as a noun, which keeps keyword tests independent
// of the statistical tagger.
func tokenTagger() nlp.Tagger {
	return nlp.TaggerFunc(func(text string) ([]string, error) {
		return textutil.Tokenize(textutil.Normalize(text)), nil
	})
}

func newTestEngine(opts ...Option) *Engine {
	base := []Option{WithTagger(tokenTagger()), WithClock(fixedClock)}
	return NewEngine(append(base, opts...)...)
}
