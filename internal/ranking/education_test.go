package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func TestAnalyzeEducation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.EducationProfile
	}{
		{
			name:     "bachelor with certifications",
			text:     "Bachelor's in Computer Science, AWS Certified",
			expected: types.EducationProfile{Degree: types.DegreeBachelors, Field: "computer science", Certifications: []string{"certified", "aws"}},
		},
		{
			name:     "highest tier wins",
			text:     "B.Sc. and Master's in Physics",
			expected: types.EducationProfile{Degree: types.DegreeMasters, Field: "physics"},
		},
		{
			name:     "associate degree is not a bachelor's",
			text:     "Associate degree in Business",
			expected: types.EducationProfile{Degree: types.DegreeAssociates, Field: "business"},
		},
		{
			name:     "bare degree reads as bachelor's",
			text:     "Computer Science degree required",
			expected: types.EducationProfile{Degree: types.DegreeBachelors, Field: "computer science"},
		},
		{
			name:     "scrum master is not a degree",
			text:     "Certified Scrum Master",
			expected: types.EducationProfile{Certifications: []string{"certified"}},
		},
		{
			name:     "nothing",
			text:     "Self-taught builder",
			expected: types.EducationProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AnalyzeEducation(tt.text))
		})
	}
}

func TestScoreEducation(t *testing.T) {
	bachelorsCS := types.EducationProfile{Degree: types.DegreeBachelors, Field: "computer science"}

	tests := []struct {
		name      string
		candidate types.EducationProfile
		required  types.EducationProfile
		expected  int
	}{
		{"nothing required", bachelorsCS, types.EducationProfile{}, 50},
		{"exact with bonus is clamped", types.EducationProfile{Degree: types.DegreeBachelors, Field: "computer science", Certifications: []string{"aws"}}, bachelorsCS, 100},
		{"one tier below, related field", types.EducationProfile{Degree: types.DegreeAssociates, Field: "engineering"}, bachelorsCS, 60},
		{"far below, unrelated field", types.EducationProfile{Degree: types.DegreeDiploma, Field: "design"}, types.EducationProfile{Degree: types.DegreeMasters, Field: "computer science"}, 20},
		{"overqualified, related field", types.EducationProfile{Degree: types.DegreePhD, Field: "mathematics"}, bachelorsCS, 80},
		{"degree only", types.EducationProfile{Degree: types.DegreeMasters}, types.EducationProfile{Degree: types.DegreeBachelors}, 50},
		{"certification bonus capped", types.EducationProfile{Certifications: []string{"a", "b", "c", "d", "e"}}, types.EducationProfile{Field: "business"}, 30},
		{"no candidate education", types.EducationProfile{}, types.EducationProfile{Degree: types.DegreeBachelors}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreEducation(tt.candidate, tt.required).Score)
		})
	}
}

func TestScoreEducation_Details(t *testing.T) {
	bachelorsCS := types.EducationProfile{Degree: types.DegreeBachelors, Field: "computer science"}

	assert.Equal(t, "Degree bachelors (required bachelors); field computer science (required computer science)",
		ScoreEducation(bachelorsCS, bachelorsCS).Details)
	assert.Equal(t, types.NoDataDetails, ScoreEducation(bachelorsCS, types.EducationProfile{}).Details)
	assert.Equal(t, types.NoDataDetails, ScoreEducation(types.EducationProfile{}, bachelorsCS).Details)
}

func TestAnalyzeRequiredEducation_PrimaryFieldsOnly(t *testing.T) {
	candidate := AnalyzeEducation("Bachelor's in Computer Science")

	for _, req := range []string{
		"Experience with software architecture and scalable systems",
		"Excellent communications skills",
		"Understands the economics of cloud spend",
	} {
		t.Run(req, func(t *testing.T) {
			required := AnalyzeRequiredEducation(req)
			assert.Empty(t, required.Field)

			got := ScoreEducation(candidate, required)
			assert.Equal(t, 50, got.Score)
			assert.Equal(t, types.NoDataDetails, got.Details)
		})
	}

	assert.Equal(t, "computer science", AnalyzeRequiredEducation("Computer Science degree required").Field)
}

func TestAnalyzeEducation_CandidateKeepsRelatedFields(t *testing.T) {
	candidate := AnalyzeEducation("M.Sc. in Mathematics")
	assert.Equal(t, "mathematics", candidate.Field)

	required := AnalyzeRequiredEducation("Bachelor's in Computer Science")
	assert.Equal(t, 80, ScoreEducation(candidate, required).Score)
}
