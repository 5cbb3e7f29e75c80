package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestBuildExtractionPrompt(t *testing.T) {
	resumeText := "John Doe, Software Engineer at Acme Corp, 2019-01 to 2021-06"
	prompt := BuildExtractionPrompt(resumeText)

	// System instruction carries the fixed rules and the serialized schema.
	assert.Contains(t, prompt.System, "STRICTLY in JSON format")
	assert.Contains(t, prompt.System, "duration_months")
	assert.Contains(t, prompt.System, `"ExtractedResumeData"`)
	assert.NotContains(t, prompt.System, resumeText)

	// User content carries the input text, not the schema.
	assert.Contains(t, prompt.User, resumeText)
	assert.NotContains(t, prompt.User, `"ExtractedResumeData"`)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	name := "Jane Smith"
	extracted := &types.ExtractedResumeData{
		ContactInfo:    &types.ContactInfo{Name: &name},
		WorkExperience: []types.WorkExperienceItem{},
		Education:      []types.EducationItem{},
		Projects:       []types.ProjectItem{},
		Certifications: []types.CertificationItem{},
		Awards:         []types.AwardItem{},
	}

	prompt, err := BuildAnalysisPrompt(extracted)
	require.NoError(t, err)

	assert.Contains(t, prompt.System, "resume_rating")
	assert.Contains(t, prompt.System, "1.0 to 10.0")
	assert.Contains(t, prompt.System, `"AnalysisResult"`)
	assert.Contains(t, prompt.User, "Jane Smith")
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Place}}", map[string]string{
		"Name":  "Ada",
		"Place": "the team",
	})
	assert.Equal(t, "Hello Ada, welcome to the team", result)
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "does-not-exist")
	assert.Error(t, err)
}
