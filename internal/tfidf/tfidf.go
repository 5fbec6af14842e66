// Package tfidf implements a small term-frequency/inverse-document-frequency model
// over a fixed set of documents. A Model is built per scoring call and never
// shared, so it needs no locking.
package tfidf

import (
	"math"

	"github.com/jonathan/candidate-matcher/internal/textutil"
)

// Model holds the normalized documents of one corpus.
type Model struct {
	docs []string
}

// New builds a model over docs. Document i is addressed by index i.
func New(docs ...string) *Model {
	normalized := make([]string, len(docs))
	for i, d := range docs {
		normalized[i] = textutil.Normalize(d)
	}
	return &Model{docs: normalized}
}

// Len returns the number of documents.
func (m *Model) Len() int {
	return len(m.docs)
}

// TermFrequency returns how many times term occurs in document doc, matched on
// word boundaries. Multi-word terms are matched as phrases.
func (m *Model) TermFrequency(term string, doc int) int {
	if doc < 0 || doc >= len(m.docs) {
		return 0
	}
	return textutil.CountTerm(m.docs[doc], textutil.Normalize(term))
}

// DocumentFrequency returns the number of documents containing term.
func (m *Model) DocumentFrequency(term string) int {
	term = textutil.Normalize(term)
	df := 0
	for _, d := range m.docs {
		if textutil.ContainsTerm(d, term) {
			df++
		}
	}
	return df
}

// IDF returns the smoothed inverse document frequency 1 + ln(N / (1 + df)).
func (m *Model) IDF(term string) float64 {
	n := float64(len(m.docs))
	if n == 0 {
		return 0
	}
	return 1 + math.Log(n/(1+float64(m.DocumentFrequency(term))))
}

// Weight returns tf * idf of term in document doc.
func (m *Model) Weight(term string, doc int) float64 {
	tf := m.TermFrequency(term, doc)
	if tf == 0 {
		return 0
	}
	return float64(tf) * m.IDF(term)
}
