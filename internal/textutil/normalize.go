// Package textutil provides text normalization and term matching helpers shared by the scorers.
package textutil

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// skillAliases maps common skill name variants to their dictionary names
var skillAliases = map[string]string{
	"go lang":             "golang",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"mongo":               "mongodb",
	"gcloud":              "google cloud",
	"amazon web services": "aws",
	"springboot":          "spring boot",
}

// Fold lower-cases s and strips diacritics so "Zürich" and "zurich" compare equal.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	// Transformers carry state; build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// CleanText collapses runs of whitespace (including non-breaking spaces) into single spaces.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Normalize folds and cleans s for matching.
func Normalize(s string) string {
	return CleanText(Fold(s))
}

// StripNonAlnum lower-cases s and drops every rune that is not a letter or digit.
func StripNonAlnum(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// CanonicalSkill maps a skill variant to its dictionary name. Unknown names are
// returned trimmed and lower-cased.
func CanonicalSkill(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}
	return lower
}

// Aliases returns the alias table as (variant, canonical) pairs in a stable order.
func Aliases() [][2]string {
	pairs := make([][2]string, 0, len(skillAliases))
	for variant, canonical := range skillAliases {
		pairs = append(pairs, [2]string{variant, canonical})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i][0] < pairs[j][0]
	})
	return pairs
}

// Dedupe removes empty and repeated strings, keeping first occurrences.
func Dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
