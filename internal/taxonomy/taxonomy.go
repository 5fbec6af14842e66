// Package taxonomy provides the read-only dictionaries used by the scoring engine:
// skills, experience bands, degree tiers, fields of study, industries and a small
// city gazetteer. The data is embedded at compile time and parsed once.
package taxonomy

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/jonathan/candidate-matcher/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// SkillCategory is a named group of dictionary skills.
type SkillCategory struct {
	Category string   `yaml:"category"`
	Terms    []string `yaml:"terms"`
}

// Band is a seniority band with its numeric year range and keyword evidence.
type Band struct {
	Level    types.ExperienceLevel `yaml:"level"`
	Min      int                   `yaml:"min"`
	Max      int                   `yaml:"max"`
	Keywords []string              `yaml:"keywords"`
}

// Domain maps a relevant-experience domain to its keyword evidence.
type Domain struct {
	Domain   string   `yaml:"domain"`
	Keywords []string `yaml:"keywords"`
}

// Degree maps a degree tier to its keyword evidence.
type Degree struct {
	Tier     types.DegreeTier `yaml:"tier"`
	Keywords []string         `yaml:"keywords"`
}

// Industry maps an industry name to its keyword evidence.
type Industry struct {
	Industry string   `yaml:"industry"`
	Keywords []string `yaml:"keywords"`
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Taxonomy is the parsed dictionary set. Values must be treated as read-only.
type Taxonomy struct {
	Skills             []SkillCategory        `yaml:"skills"`
	TechnologyTerms    []string               `yaml:"technology_terms"`
	ExperienceBands    []Band                 `yaml:"experience_bands"`
	ExperienceDomains  []Domain               `yaml:"experience_domains"`
	RequirementDomains []Domain               `yaml:"requirement_domains"`
	Degrees            []Degree               `yaml:"degrees"`
	GenericDegree      Degree                 `yaml:"generic_degree"`
	FieldsOfStudy      []string               `yaml:"fields_of_study"`
	RelatedFields      map[string][]string    `yaml:"related_fields"`
	Certifications     []string               `yaml:"certifications"`
	Industries         []Industry             `yaml:"industries"`
	RelatedIndustries  map[string][]string    `yaml:"related_industries"`
	Cities             map[string]Coordinates `yaml:"cities"`
}

// Parse decodes and checks a taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Taxonomy) validate() error {
	if len(t.Skills) == 0 {
		return fmt.Errorf("taxonomy has no skill categories")
	}
	if len(t.ExperienceBands) != len(types.ExperienceLevels) {
		return fmt.Errorf("taxonomy must define %d experience bands, got %d", len(types.ExperienceLevels), len(t.ExperienceBands))
	}
	for i, band := range t.ExperienceBands {
		if band.Level != types.ExperienceLevels[i] {
			return fmt.Errorf("experience band %d is %q, want %q", i, band.Level, types.ExperienceLevels[i])
		}
		if band.Min > band.Max {
			return fmt.Errorf("experience band %q has min > max", band.Level)
		}
	}
	known := make(map[string]bool, len(t.ExperienceDomains))
	for _, d := range t.ExperienceDomains {
		known[d.Domain] = true
	}
	for _, d := range t.RequirementDomains {
		if !known[d.Domain] {
			return fmt.Errorf("requirement domain %q is not an experience domain", d.Domain)
		}
	}
	for _, degree := range t.Degrees {
		if degree.Tier.Rank() < 0 {
			return fmt.Errorf("unknown degree tier %q", degree.Tier)
		}
	}
	return nil
}

// AllSkills returns every dictionary skill in category order.
func (t *Taxonomy) AllSkills() []string {
	var all []string
	for _, c := range t.Skills {
		all = append(all, c.Terms...)
	}
	return all
}

// SkillCategoryOf returns the category of a dictionary skill, or "".
func (t *Taxonomy) SkillCategoryOf(skill string) string {
	for _, c := range t.Skills {
		for _, term := range c.Terms {
			if term == skill {
				return c.Category
			}
		}
	}
	return ""
}

var loadDefault = sync.OnceValue(func() *Taxonomy {
	t, err := Parse(taxonomyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy is invalid: %v", err))
	}
	return t
})

// Default returns the embedded taxonomy. It is shared and must not be mutated.
func Default() *Taxonomy {
	return loadDefault()
}
