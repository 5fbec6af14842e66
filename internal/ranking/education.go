// Package ranking scores a candidate record against a job requirement record.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/textutil"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Education scoring points
const (
	degreeMeetsPoints    = 50
	degreeOneBelowPoints = 30
	degreeFarBelowPoints = 10

	fieldExactPoints     = 50
	fieldRelatedPoints   = 30
	fieldUnrelatedPoints = 10

	certificationPoints   = 5
	certificationBonusCap = 20
)

// AnalyzeEducation extracts the degree tier, field of study and certifications
// mentioned in a candidate's text. Higher tiers are checked first; a bare
// "degree" counts as a bachelor's only when no tier keyword is present.
func AnalyzeEducation(text string) types.EducationProfile {
	return analyzeEducation(text, knownFields(taxonomy.Default()))
}

// AnalyzeRequiredEducation is AnalyzeEducation for a requirement. Only the
// primary fields of study count, so words such as "architecture" in a posting
// do not turn into a required field.
func AnalyzeRequiredEducation(text string) types.EducationProfile {
	return analyzeEducation(text, taxonomy.Default().FieldsOfStudy)
}

func analyzeEducation(text string, fields []string) types.EducationProfile {
	normalized := textutil.Normalize(text)
	tax := taxonomy.Default()

	var profile types.EducationProfile
	for _, degree := range tax.Degrees {
		if textutil.ContainsAny(normalized, degree.Keywords) {
			profile.Degree = degree.Tier
			break
		}
	}
	if profile.Degree == "" && textutil.ContainsAny(normalized, tax.GenericDegree.Keywords) {
		profile.Degree = tax.GenericDegree.Tier
	}

	for _, field := range fields {
		if textutil.ContainsTerm(normalized, field) {
			profile.Field = field
			break
		}
	}

	for _, cert := range tax.Certifications {
		if textutil.ContainsTerm(normalized, cert) {
			profile.Certifications = append(profile.Certifications, cert)
		}
	}
	return profile
}

// knownFields returns the primary fields of study followed by the fields that
// only appear in the related-fields table, so a "mathematics" degree can still
// be credited as related.
func knownFields(tax *taxonomy.Taxonomy) []string {
	fields := append([]string(nil), tax.FieldsOfStudy...)
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		seen[f] = true
	}

	var extra []string
	for _, related := range tax.RelatedFields {
		for _, f := range related {
			if !seen[f] {
				seen[f] = true
				extra = append(extra, f)
			}
		}
	}
	sort.Strings(extra)
	return append(fields, extra...)
}

// ScoreEducation compares a candidate's education with the required degree and
// field. Degree and field contribute up to 50 points each and certifications add
// min(20, 5 per certification). Without a required degree or field the score is
// a neutral 50.
func ScoreEducation(candidate, required types.EducationProfile) types.CategoryScore {
	if required.Degree == "" && required.Field == "" {
		return types.CategoryScore{Score: 50, Details: types.NoDataDetails}
	}

	score := 0
	var parts []string

	if required.Degree != "" {
		reqRank := required.Degree.Rank()
		candRank := candidate.Degree.Rank()
		switch {
		case candidate.Degree != "" && candRank >= reqRank:
			score += degreeMeetsPoints
		case candidate.Degree != "" && candRank == reqRank-1:
			score += degreeOneBelowPoints
		default:
			score += degreeFarBelowPoints
		}
		parts = append(parts, fmt.Sprintf("degree %s (required %s)", orNone(string(candidate.Degree)), required.Degree))
	}

	if required.Field != "" {
		score += fieldPoints(candidate.Field, required.Field)
		parts = append(parts, fmt.Sprintf("field %s (required %s)", orNone(candidate.Field), required.Field))
	}

	if n := len(candidate.Certifications); n > 0 {
		score += min(certificationBonusCap, n*certificationPoints)
		parts = append(parts, fmt.Sprintf("%d certification keyword(s)", n))
	}

	score = max(0, min(100, score))

	if candidate.Degree == "" && candidate.Field == "" && len(candidate.Certifications) == 0 {
		return types.CategoryScore{Score: score, Details: types.NoDataDetails}
	}
	return types.CategoryScore{Score: score, Details: capitalize(strings.Join(parts, "; "))}
}

func fieldPoints(candidateField, requiredField string) int {
	if candidateField == "" {
		return fieldUnrelatedPoints
	}
	if strings.EqualFold(candidateField, requiredField) {
		return fieldExactPoints
	}
	for _, related := range taxonomy.Default().RelatedFields[strings.ToLower(requiredField)] {
		if strings.EqualFold(related, candidateField) {
			return fieldRelatedPoints
		}
	}
	return fieldUnrelatedPoints
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
