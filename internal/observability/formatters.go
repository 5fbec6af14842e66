// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/ranking"
	"github.com/jonathan/candidate-matcher/internal/taxonomy"
	"github.com/jonathan/candidate-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fit(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// fit truncates line to width runes.
func fit(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}

// PrintScoringResult outputs the overall verdict followed by one row per category.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %d (%s)\n", result.OverallScore, result.MatchLevel))
	sb.WriteString(fmt.Sprintf("Confidence: %d%%\n", result.Confidence))
	sb.WriteString("\n")

	for _, c := range result.CategoryScores.All() {
		sb.WriteString(fmt.Sprintf("%-11s %3d  %s\n", c.Name, c.Score.Score, c.Score.Details))
	}

	if missing := result.CategoryScores.Skills.Missing; len(missing) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(missing), maxItemsToShow)
		tax := taxonomy.Default()
		for i := 0; i < count; i++ {
			if category := tax.SkillCategoryOf(missing[i]); category != "" {
				sb.WriteString(fmt.Sprintf("  • %s (%s)\n", missing[i], category))
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\n%s", result.Reasoning))

	p.printBox("MATCH SCORE", sb.String())
	p.PrintRecommendations(result.Recommendations)
}

// PrintRecommendations outputs recommendations with their priority.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(rec.Priority)), rec.Category))
		sb.WriteString(fmt.Sprintf("  %s", rec.Suggestion))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintRanking outputs the top ranked candidates.
func (p *Printer) PrintRanking(ranked []ranking.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Rank, r.ID))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s), confidence %d%%", r.Result.OverallScore, r.Result.MatchLevel, r.Result.Confidence))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}
