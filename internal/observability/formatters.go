// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedResume outputs a human-readable summary of the
// structured extraction.
func (p *Printer) PrintExtractedResume(data *types.ExtractedResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	if data.ContactInfo != nil {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", orUnknown(data.ContactInfo.Name)))
		sb.WriteString(fmt.Sprintf("Email:  %s\n", orUnknown(data.ContactInfo.Email)))
	}
	sb.WriteString(fmt.Sprintf("Work experience entries: %d\n", len(data.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Education entries:       %d\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Projects:                %d\n", len(data.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications:          %d\n", len(data.Certifications)))
	sb.WriteString(fmt.Sprintf("Awards:                  %d\n", len(data.Awards)))

	for i, exp := range data.WorkExperience {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(data.WorkExperience)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("- %s at %s\n", orUnknown(exp.Role), orUnknown(exp.Company)))
	}

	p.printBox("EXTRACTED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs a human-readable summary of the model's review.
func (p *Printer) PrintAnalysis(analysis *types.AnalysisResult) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	if analysis.ResumeRating != nil {
		sb.WriteString(fmt.Sprintf("Rating: %.1f / 10\n", *analysis.ResumeRating))
	}
	if analysis.OverallFeedback != nil {
		sb.WriteString(fmt.Sprintf("Feedback: %s\n", *analysis.OverallFeedback))
	}

	sb.WriteString("\nStrengths:\n")
	for _, item := range capped(analysis.StrengthAreas) {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	sb.WriteString("\nImprovement areas:\n")
	for _, item := range capped(analysis.ImprovementAreas) {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	sb.WriteString("\nATS keywords: ")
	sb.WriteString(strings.Join(analysis.SuggestedKeywordsForATS, ", "))
	sb.WriteString("\nPotential roles: ")
	sb.WriteString(strings.Join(analysis.PotentialRoles, ", "))

	p.printBox("RESUME ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

func capped(items []string) []string {
	if len(items) > maxItemsToShow {
		return items[:maxItemsToShow]
	}
	return items
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "(unknown)"
	}
	return *s
}
