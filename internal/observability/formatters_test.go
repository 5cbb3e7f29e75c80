package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func strPtr(s string) *string { return &s }

func TestPrintExtractedResume(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintExtractedResume(&types.ExtractedResumeData{
		ContactInfo: &types.ContactInfo{Name: strPtr("Jane Smith")},
		WorkExperience: []types.WorkExperienceItem{
			{Company: strPtr("Example Inc"), Role: strPtr("Staff Engineer")},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED RESUME")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "(unknown)") // email was absent
	assert.Contains(t, out, "Staff Engineer at Example Inc")
}

func TestPrintExtractedResume_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExtractedResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExtractedResume_CapsLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	var entries []types.WorkExperienceItem
	for i := 0; i < maxItemsToShow+3; i++ {
		entries = append(entries, types.WorkExperienceItem{Company: strPtr("Example Inc")})
	}
	printer.PrintExtractedResume(&types.ExtractedResumeData{WorkExperience: entries})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	rating := 7.5
	printer.PrintAnalysis(&types.AnalysisResult{
		ResumeRating:            &rating,
		OverallFeedback:         strPtr("Solid resume."),
		StrengthAreas:           []string{"Go experience"},
		ImprovementAreas:        []string{"Add metrics"},
		SuggestedKeywordsForATS: []string{"Go", "Kubernetes"},
		PotentialRoles:          []string{"Backend Engineer"},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME ANALYSIS")
	assert.Contains(t, out, "Rating: 7.5 / 10")
	assert.Contains(t, out, "Solid resume.")
	assert.Contains(t, out, "Go, Kubernetes")
	assert.Contains(t, out, "Backend Engineer")
}

func TestPrintAnalysis_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestCapped(t *testing.T) {
	long := []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.Len(t, capped(long), maxItemsToShow)
	short := []string{"a"}
	assert.Equal(t, short, capped(short))
}
