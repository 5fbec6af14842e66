// Package skills extracts skill sets from free text and fuzzy-matches a candidate's
// skills against the skills a requirement asks for.
package skills

import (
	"fmt"
	"math"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/jonathan/candidate-matcher/internal/nlp"
	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/textutil"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// Similarity thresholds (Jaro-Winkler)
	fullMatchThreshold    = 0.85
	partialMatchThreshold = 0.70

	// partialWeight is the credit given to a partial match
	partialWeight = 0.7

	// neutralScore is returned when the requirement names no skills
	neutralScore = 50
)

// Extract returns the skills found in text: dictionary skills (or one of their
// aliases) in dictionary order, then technology phrases from the NLP layer.
// The result is de-duplicated and keeps first positions. Lookup matches whole
// terms rather than raw substrings, so "java" is not found in "javascript".
func Extract(text string) []string {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return nil
	}

	variants := aliasesByCanonical()
	tokens := make(map[string]bool)
	for _, tok := range textutil.Tokenize(normalized) {
		tokens[tok] = true
	}

	var found []string
	for _, skill := range taxonomy.Default().AllSkills() {
		if textutil.ContainsTerm(normalized, skill) || hasAlias(normalized, tokens, variants[skill]) {
			found = append(found, skill)
		}
	}
	for _, term := range nlp.TechTerms(normalized) {
		found = append(found, textutil.CanonicalSkill(term))
	}
	return textutil.Dedupe(found)
}

// hasAlias matches single-word aliases against whole tokens so "js" is not
// found inside "node.js".
func hasAlias(text string, tokens map[string]bool, aliases []string) bool {
	for _, alias := range aliases {
		if strings.Contains(alias, " ") {
			if textutil.ContainsTerm(text, alias) {
				return true
			}
			continue
		}
		if tokens[alias] {
			return true
		}
	}
	return false
}

func aliasesByCanonical() map[string][]string {
	out := make(map[string][]string)
	for _, pair := range textutil.Aliases() {
		out[pair[1]] = append(out[pair[1]], pair[0])
	}
	return out
}

// Match scores candidate skills against required skills. Each required skill is
// matched to its best candidate skill: a full match ends the search, otherwise
// the most similar partial match is kept.
//
// Score = min(100, round((full + 0.7*partial) / len(required) * 100)). A requirement
// without skills scores a neutral 50 with no lists.
func Match(candidate, required []string) types.CategoryScore {
	if len(required) == 0 {
		return types.CategoryScore{Score: neutralScore, Details: types.NoDataDetails}
	}

	var (
		full, partial int
		matched       []types.MatchPair
		missing       []string
	)
	for _, req := range required {
		found, isPartial, ok := bestMatch(req, candidate)
		if !ok {
			missing = append(missing, req)
			continue
		}
		if isPartial {
			partial++
		} else {
			full++
		}
		matched = append(matched, types.MatchPair{Required: req, Found: found, Partial: isPartial})
	}

	credit := float64(full) + partialWeight*float64(partial)
	score := int(math.Round(credit / float64(len(required)) * 100))
	if score > 100 {
		score = 100
	}

	details := fmt.Sprintf("Matched %d of %d required skills", full+partial, len(required))
	if partial > 0 {
		details += fmt.Sprintf(" (%d partial)", partial)
	}
	if len(candidate) == 0 {
		details = types.NoDataDetails
	}

	return types.CategoryScore{
		Score:   score,
		Details: details,
		Matched: matched,
		Missing: missing,
	}
}

func bestMatch(required string, candidate []string) (found string, partial bool, ok bool) {
	bestSim := 0.0
	for _, c := range candidate {
		if IsFullMatch(required, c) {
			return c, false, true
		}
		if sim := Similarity(strings.ToLower(required), strings.ToLower(c)); sim > partialMatchThreshold && sim > bestSim {
			bestSim = sim
			found = c
		}
	}
	if found == "" {
		return "", false, false
	}
	return found, true, true
}

// IsFullMatch reports whether two skill names denote the same skill: equal once
// punctuation is stripped, one containing the other as a whole term, or
// Jaro-Winkler similarity above 0.85.
func IsFullMatch(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	if la == lb {
		return true
	}

	na, nb := textutil.StripNonAlnum(la), textutil.StripNonAlnum(lb)
	if na == nb {
		// "c++" and "c#" both strip to "c"
		return len(na) > 1
	}
	if textutil.ContainsTerm(la, lb) || textutil.ContainsTerm(lb, la) {
		return true
	}
	return Similarity(na, nb) > fullMatchThreshold
}

// Similarity is the Jaro-Winkler similarity of a and b in [0,1].
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}
