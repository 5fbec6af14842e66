//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ExperienceLevel is a seniority band. The zero value means no level was detected.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// ExperienceLevels lists the bands from most junior to most senior.
var ExperienceLevels = []ExperienceLevel{LevelEntry, LevelMid, LevelSenior, LevelExecutive}

// Index returns the ordinal position of the level, or -1 if unknown.
func (l ExperienceLevel) Index() int {
	for i, level := range ExperienceLevels {
		if level == l {
			return i
		}
	}
	return -1
}

// ExperienceProfile summarizes experience evidence extracted from text.
type ExperienceProfile struct {
	Years           int             `json:"years"`
	Level           ExperienceLevel `json:"level,omitempty"`
	RelevantDomains []string        `json:"relevant_domains,omitempty"`
}

// HasDomain reports whether domain is among the relevant domains.
func (p ExperienceProfile) HasDomain(domain string) bool {
	for _, d := range p.RelevantDomains {
		if strings.EqualFold(d, domain) {
			return true
		}
	}
	return false
}

// DegreeTier is an ordinal degree level. The zero value means no degree.
type DegreeTier string

const (
	DegreeDiploma    DegreeTier = "diploma"
	DegreeAssociates DegreeTier = "associates"
	DegreeBachelors  DegreeTier = "bachelors"
	DegreeMasters    DegreeTier = "masters"
	DegreePhD        DegreeTier = "phd"
)

// DegreeHierarchy lists tiers from lowest to highest.
var DegreeHierarchy = []DegreeTier{DegreeDiploma, DegreeAssociates, DegreeBachelors, DegreeMasters, DegreePhD}

// Rank returns the ordinal position of the tier, or -1 for none.
func (d DegreeTier) Rank() int {
	for i, tier := range DegreeHierarchy {
		if tier == d {
			return i
		}
	}
	return -1
}

// EducationProfile summarizes education evidence extracted from text.
type EducationProfile struct {
	Degree         DegreeTier `json:"degree,omitempty"`
	Field          string     `json:"field,omitempty"`
	Certifications []string   `json:"certifications,omitempty"`
}
