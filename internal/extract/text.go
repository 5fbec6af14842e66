package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/candidate-matcher/internal/textutil"
)

// probe is one step of the text probing policy.
type probe struct {
	name  string
	value func(f Fields) string
}

// probes is the ordered policy used by Text. The first probe producing
// non-blank text wins.
var probes = []probe{
	{"text", func(f Fields) string { return f.Text }},
	{"description", func(f Fields) string { return f.Description }},
	{"summary", func(f Fields) string { return f.Summary }},
	{"content", func(f Fields) string { return f.Content }},
	{"headline", func(f Fields) string {
		if strings.TrimSpace(f.Headline) == "" {
			return ""
		}
		return f.Headline + " " + f.Summary
	}},
	{"composite", func(f Fields) string {
		return textutil.CleanText(strings.Join([]string{
			f.Title, f.Description, f.Requirements, f.Responsibilities, f.Qualifications,
		}, " "))
	}},
}

// Probes returns the names of the probing steps in the order they are tried.
func Probes() []string {
	names := make([]string, len(probes))
	for i, p := range probes {
		names[i] = p.name
	}
	return names
}

// Text returns the best-effort plain-text representation of src. A string is
// returned unchanged and nil yields "". Records are decoded into Fields and the
// probing policy is applied; undecodable records degrade to whatever fields
// could be read.
func Text(src any) string {
	if s, ok := src.(string); ok {
		return s
	}
	fields, _ := Decode(src)
	return FieldsText(fields)
}

// FieldsText applies the probing policy to already decoded fields.
func FieldsText(f Fields) string {
	for _, p := range probes {
		if v := strings.TrimSpace(p.value(f)); v != "" {
			return stripMarkup(v)
		}
	}
	return ""
}

// Location returns the location declared by src, or "" when none is present.
func Location(src any) string {
	if _, ok := src.(string); ok {
		return ""
	}
	fields, _ := Decode(src)
	return FieldsLocation(fields)
}

// FieldsLocation returns the declared location of already decoded fields.
func FieldsLocation(f Fields) string {
	if loc := textutil.CleanText(f.Location); loc != "" {
		return loc
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{f.City, f.State, f.Country} {
		if p = textutil.CleanText(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// IsRemote reports whether src declares remote work.
func IsRemote(src any) bool {
	if _, ok := src.(string); ok {
		return false
	}
	fields, _ := Decode(src)
	return FieldsRemote(fields)
}

// FieldsRemote reports whether already decoded fields declare remote work.
func FieldsRemote(f Fields) bool {
	if f.Remote || f.IsRemote {
		return true
	}
	return textutil.ContainsTerm(textutil.Normalize(f.WorkMode), "remote") ||
		textutil.ContainsTerm(textutil.Normalize(f.Location), "remote")
}

var markupRe = regexp.MustCompile(`<(?:[a-zA-Z][a-zA-Z0-9]*|/[a-zA-Z][a-zA-Z0-9]*|!--)[^>]*>`)

// stripMarkup converts HTML fragments to text. Plain text passes through.
func stripMarkup(s string) string {
	if !markupRe.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style, noscript").Remove()

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return textutil.CleanText(strings.Join(parts, " "))
}

// Document is everything the scorers read from one source record.
type Document struct {
	Text     string
	Location string
	Remote   bool
	Industry string
}

// Parse extracts a Document from src. A string source is treated as plain text
// with no location. Decode problems are returned together with the best-effort
// Document; callers may treat them as non-fatal.
func Parse(src any) (Document, error) {
	if s, ok := src.(string); ok {
		return Document{Text: s}, nil
	}
	fields, err := Decode(src)
	return Document{
		Text:     FieldsText(fields),
		Location: FieldsLocation(fields),
		Remote:   FieldsRemote(fields),
		Industry: textutil.CleanText(fields.Industry),
	}, err
}
