package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsTerm reports whether term occurs in text on word boundaries.
// Both arguments are expected to be normalized (see Normalize). Terms that
// begin or end with punctuation, like "c++" or "sr.", only need a boundary on
// their alphanumeric side.
func ContainsTerm(text, term string) bool {
	return CountTerm(text, term) > 0
}

// CountTerm returns the number of non-overlapping boundary-delimited
// occurrences of term in text.
func CountTerm(text, term string) int {
	if term == "" || text == "" {
		return 0
	}

	count := 0
	offset := 0
	for offset <= len(text)-len(term) {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(text, start, term) && boundaryAfter(text, end, term) {
			count++
			offset = end
			continue
		}
		offset = start + 1
	}
	return count
}

// ContainsAny reports whether any of terms occurs in text.
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if ContainsTerm(text, term) {
			return true
		}
	}
	return false
}

func boundaryBefore(text string, start int, term string) bool {
	if start == 0 {
		return true
	}
	first, _ := utf8.DecodeRuneInString(term)
	if !isWordRune(first) {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func boundaryAfter(text string, end int, term string) bool {
	if end >= len(text) {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(term)
	if !isWordRune(last) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize splits normalized text into tokens, keeping the characters that
// commonly appear inside technology names (".", "+", "#", "/", "-").
// Leading and trailing punctuation is trimmed from each token.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(isWordRune(r) || strings.ContainsRune(".+#/-'", r))
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimLeft(f, ".+#/-'")
		f = strings.TrimRight(f, "./-'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
