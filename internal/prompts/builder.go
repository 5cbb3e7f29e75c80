package prompts

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// BuildExtractionPrompt constructs the extraction request from the
// resume text. The target schema is serialized into the system
// instruction so the instruction carries no hidden state.
func BuildExtractionPrompt(resumeText string) llm.Prompt {
	system := Format(MustGet("extraction.json", "extraction-system"), map[string]string{
		"Schema": schemas.ExtractedResumeSchema(),
	})
	user := Format(MustGet("extraction.json", "extraction-user"), map[string]string{
		"ResumeText": resumeText,
	})
	return llm.Prompt{System: system, User: user}
}

// BuildAnalysisPrompt constructs the analysis request from an already
// extracted record.
func BuildAnalysisPrompt(extracted *types.ExtractedResumeData) (llm.Prompt, error) {
	serialized, err := json.MarshalIndent(extracted, "", "  ")
	if err != nil {
		return llm.Prompt{}, fmt.Errorf("failed to serialize extracted record: %w", err)
	}

	system := Format(MustGet("analysis.json", "analysis-system"), map[string]string{
		"Schema": schemas.AnalysisResultSchema(),
	})
	user := Format(MustGet("analysis.json", "analysis-user"), map[string]string{
		"ResumeJSON": string(serialized),
	})
	return llm.Prompt{System: system, User: user}, nil
}
