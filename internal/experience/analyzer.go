// Package experience extracts years of experience, seniority level and relevant
// domains from free text and compares a candidate's profile against a requirement.
package experience

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/textutil"
	"github.com/jonathan/candidate-matcher/internal/types"
)

var (
	// "5 years of experience", "3+ yrs exp"
	candidateYearsRe = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)\b`)
	// requirements usually omit the qualifier: "5+ years"
	requirementYearsRe = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)\b`)
)

const (
	baseScore = 50
	// maxStatedYears caps year counts read from text.
	maxStatedYears = 100
)

// Requirement is the experience a job requirement asks for.
type Requirement struct {
	Years  int                   `json:"years"`
	Level  types.ExperienceLevel `json:"level,omitempty"`
	Domain string                `json:"domain,omitempty"`
}

// Analyze builds a candidate ExperienceProfile from text.
// Bands are visited from entry to executive; a band whose year range contains
// the stated years sets the level, and a band whose keywords appear overrides
// any earlier decision.
func Analyze(text string) types.ExperienceProfile {
	normalized := textutil.Normalize(text)
	tax := taxonomy.Default()

	profile := types.ExperienceProfile{Years: maxYears(candidateYearsRe, normalized)}
	for _, band := range tax.ExperienceBands {
		if profile.Years > 0 && profile.Years >= band.Min && profile.Years <= band.Max {
			profile.Level = band.Level
		}
		if textutil.ContainsAny(normalized, band.Keywords) {
			profile.Level = band.Level
		}
	}

	for _, domain := range tax.ExperienceDomains {
		if textutil.ContainsAny(normalized, domain.Keywords) {
			profile.RelevantDomains = append(profile.RelevantDomains, domain.Domain)
		}
	}
	return profile
}

// AnalyzeRequirement builds the experience Requirement stated by text. A
// requirement states its level through keywords only.
func AnalyzeRequirement(text string) Requirement {
	normalized := textutil.Normalize(text)
	tax := taxonomy.Default()

	req := Requirement{Years: maxYears(requirementYearsRe, normalized)}
	for _, band := range tax.ExperienceBands {
		if textutil.ContainsAny(normalized, band.Keywords) {
			req.Level = band.Level
		}
	}
	for _, domain := range tax.RequirementDomains {
		if textutil.ContainsAny(normalized, domain.Keywords) {
			req.Domain = domain.Domain
			break
		}
	}
	return req
}

func maxYears(re *regexp.Regexp, text string) int {
	best := 0
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				continue
			}
			n = maxStatedYears
		}
		n = clampYears(n)
		if n > best {
			best = n
		}
	}
	return best
}

func clampYears(n int) int {
	return max(0, min(maxStatedYears, n))
}

// Score compares a candidate profile with a requirement. Starting from 50:
//   - years met: +min(20, surplus*2); years short: -min(30, shortfall*5)
//   - levels: equal +20, above +10, one below +5, further below -10
//   - required domain among the candidate's relevant domains: +20
//
// The result is clamped to [0,100].
func Score(candidate types.ExperienceProfile, req Requirement) types.CategoryScore {
	score := baseScore

	if reqYears := clampYears(req.Years); reqYears > 0 {
		candYears := clampYears(candidate.Years)
		if candYears >= reqYears {
			score += min(20, (candYears-reqYears)*2)
		} else {
			score -= min(30, (reqYears-candYears)*5)
		}
	}

	if candidate.Level != "" && req.Level != "" {
		ci, ri := candidate.Level.Index(), req.Level.Index()
		switch {
		case ci == ri:
			score += 20
		case ci > ri:
			score += 10
		case ci == ri-1:
			score += 5
		default:
			score -= 10
		}
	}

	if req.Domain != "" && candidate.HasDomain(req.Domain) {
		score += 20
	}

	score = max(0, min(100, score))

	if (candidate.Years == 0 && candidate.Level == "") || (req.Years == 0 && req.Level == "") {
		return types.CategoryScore{Score: score, Details: types.NoDataDetails}
	}
	return types.CategoryScore{Score: score, Details: describe(candidate, req)}
}

// Evaluate analyzes both texts and scores them.
func Evaluate(candidateText, requirementText string) types.CategoryScore {
	return Score(Analyze(candidateText), AnalyzeRequirement(requirementText))
}

func describe(candidate types.ExperienceProfile, req Requirement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidate: %d years", candidate.Years)
	if candidate.Level != "" {
		fmt.Fprintf(&sb, " (%s)", candidate.Level)
	}
	sb.WriteString("; required: ")
	if req.Years > 0 {
		fmt.Fprintf(&sb, "%d+ years", req.Years)
	} else {
		sb.WriteString("any years")
	}
	if req.Level != "" {
		fmt.Fprintf(&sb, " (%s)", req.Level)
	}
	if req.Domain != "" {
		fmt.Fprintf(&sb, ", %s domain", req.Domain)
	}
	return sb.String()
}
