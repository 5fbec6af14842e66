package ranking

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jonathan/candidate-matcher/internal/nlp"
	"github.com/jonathan/candidate-matcher/internal/textutil"
	"github.com/jonathan/candidate-matcher/internal/tfidf"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	maxSalientTerms = 20
	minNounLength   = 3
)

// Corpus document indexes
const (
	candidateDoc   = 0
	requirementDoc = 1
)

// SalientTerms returns the requirement's nouns longer than two characters
// followed by its technology phrases, lower-cased and de-duplicated, capped at
// the first 20.
func SalientTerms(tagger nlp.Tagger, requirementText string) ([]string, error) {
	nouns, err := tagger.Nouns(requirementText)
	if err != nil {
		return nil, fmt.Errorf("failed to extract nouns: %w", err)
	}

	var terms []string
	for _, noun := range nouns {
		noun = textutil.Normalize(noun)
		if utf8.RuneCountInString(noun) < minNounLength || textutil.StripNonAlnum(noun) == "" {
			continue
		}
		terms = append(terms, noun)
	}
	terms = append(terms, nlp.TechTerms(requirementText)...)

	terms = textutil.Dedupe(terms)
	if len(terms) > maxSalientTerms {
		terms = terms[:maxSalientTerms]
	}
	return terms, nil
}

// ScoreKeywords measures how well the candidate text covers the requirement's
// salient terms. A fresh two-document TF-IDF model is built for every call.
// Each term contributes min(candidateWeight/requirementWeight, 1) * 100; terms
// absent from the candidate contribute 0 and are reported as missing. Terms
// whose requirement weight is not positive cannot be compared and are skipped.
func ScoreKeywords(tagger nlp.Tagger, candidateText, requirementText string) (types.CategoryScore, error) {
	terms, err := SalientTerms(tagger, requirementText)
	if err != nil {
		return types.CategoryScore{}, err
	}
	if len(terms) == 0 {
		return types.CategoryScore{Score: 0, Details: types.NoDataDetails}, nil
	}

	model := tfidf.New(candidateText, requirementText)

	total := 0.0
	counted := 0
	var missing []string
	for _, term := range terms {
		reqWeight := model.Weight(term, requirementDoc)
		if reqWeight <= 0 {
			continue
		}
		counted++

		candWeight := model.Weight(term, candidateDoc)
		if candWeight == 0 {
			missing = append(missing, term)
			continue
		}
		total += math.Min(candWeight/reqWeight, 1) * 100
	}

	if counted == 0 {
		return types.CategoryScore{Score: 0, Details: types.NoDataDetails}, nil
	}

	score := int(math.Round(total / float64(counted)))
	details := fmt.Sprintf("Covered %d of %d key terms", counted-len(missing), counted)
	if textutil.Normalize(candidateText) == "" {
		details = types.NoDataDetails
	}
	return types.CategoryScore{Score: score, Details: details, Missing: missing}, nil
}
