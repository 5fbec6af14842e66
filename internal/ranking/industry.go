package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/textutil"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Industries returns the industries whose keywords appear in text, in taxonomy order.
func Industries(text string) []string {
	normalized := textutil.Normalize(text)
	if normalized == "" {
		return nil
	}

	var found []string
	for _, ind := range taxonomy.Default().Industries {
		if textutil.ContainsAny(normalized, ind.Keywords) {
			found = append(found, ind.Industry)
		}
	}
	return found
}

// ScoreIndustry compares candidate industries with required ones: an exact
// match scores 100, a related industry 40, anything else 20. A requirement with
// no industry signal scores a neutral 50.
func ScoreIndustry(candidate, required []string) types.CategoryScore {
	if len(required) == 0 {
		return types.CategoryScore{Score: 50, Details: types.NoDataDetails}
	}
	if len(candidate) == 0 {
		return types.CategoryScore{Score: 20, Details: types.NoDataDetails}
	}

	for _, req := range required {
		for _, c := range candidate {
			if strings.EqualFold(req, c) {
				return types.CategoryScore{Score: 100, Details: fmt.Sprintf("Industry match: %s", req)}
			}
		}
	}

	related := taxonomy.Default().RelatedIndustries
	for _, req := range required {
		for _, r := range related[strings.ToLower(req)] {
			for _, c := range candidate {
				if strings.EqualFold(r, c) {
					return types.CategoryScore{Score: 40, Details: fmt.Sprintf("Related industry: %s (required %s)", c, req)}
				}
			}
		}
	}

	return types.CategoryScore{
		Score:   20,
		Details: fmt.Sprintf("Different industry: %s (required %s)", strings.Join(candidate, ", "), strings.Join(required, ", ")),
	}
}
