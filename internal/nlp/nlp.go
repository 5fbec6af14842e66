// Package nlp provides the lightweight language layer used for skill and keyword
// extraction: part-of-speech noun tagging and technology-term detection.
package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/textutil"
)

// Tagger extracts the nouns of a text, lower-cased, in order of appearance.
type Tagger interface {
	Nouns(text string) ([]string, error)
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(text string) ([]string, error)

// Nouns calls f(text).
func (f TaggerFunc) Nouns(text string) ([]string, error) {
	return f(text)
}

// ProseTagger tags text with the prose averaged-perceptron model. Each call
// builds its own document, so a ProseTagger is safe for concurrent use.
type ProseTagger struct{}

// NewProseTagger returns the default Tagger.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Nouns returns every token tagged NN, NNS, NNP or NNPS.
func (ProseTagger) Nouns(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	var nouns []string
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") {
			nouns = append(nouns, strings.ToLower(tok.Text))
		}
	}
	return nouns, nil
}

var (
	// node.js, asp.net; every segment has at least two characters so "e.g" and "b.s" are not terms
	dottedTermRe = regexp.MustCompile(`^[a-z][a-z0-9]+(?:\.[a-z0-9]{2,})+$`)
	// c++, c#, f#
	symbolTermRe = regexp.MustCompile(`^[a-z][a-z0-9]*[+#]+$`)
	// html5, k8s, ec2
	versionedTermRe = regexp.MustCompile(`^[a-z]+[0-9][a-z0-9]*$`)
)

// TechTerms returns the technology phrases found in text: known technology
// terms from the taxonomy, then tokens shaped like technology names. Results
// are lower-cased and de-duplicated, in discovery order.
func TechTerms(text string) []string {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return nil
	}

	var terms []string
	for _, term := range taxonomy.Default().TechnologyTerms {
		if textutil.ContainsTerm(normalized, term) {
			terms = append(terms, term)
		}
	}
	for _, tok := range textutil.Tokenize(normalized) {
		if IsTechShaped(tok) {
			terms = append(terms, tok)
		}
	}
	return textutil.Dedupe(terms)
}

// IsTechShaped reports whether a single normalized token looks like a technology name.
func IsTechShaped(token string) bool {
	return dottedTermRe.MatchString(token) ||
		symbolTermRe.MatchString(token) ||
		versionedTermRe.MatchString(token)
}
