// Package schemas defines the structured-output contracts for LLM
// responses and validates candidate payloads against them.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SchemaViolation reports a payload that failed schema validation,
// with one entry per offending field path.
type SchemaViolation struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single validation error at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (v *SchemaViolation) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", v.Schema))
	for i, err := range v.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

var emailValidator = validator.New()

// validateAgainst runs a JSON document through a compiled schema and
// converts failures to a *SchemaViolation.
func validateAgainst(schema *gojsonschema.Schema, schemaName, jsonText string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return &SchemaViolation{
			Schema: schemaName,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	if result.Valid() {
		return nil
	}

	violation := &SchemaViolation{
		Schema: schemaName,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		violation.Errors = append(violation.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return violation
}

// ValidateExtractedResume validates a candidate JSON payload against the
// ExtractedResumeData schema and returns the normalized record. Missing
// optional fields keep their declared defaults; list fields are always
// present after normalization.
func ValidateExtractedResume(jsonText string) (*types.ExtractedResumeData, error) {
	if err := validateAgainst(extractedResumeSchema, "ExtractedResumeData", jsonText); err != nil {
		return nil, err
	}

	var data types.ExtractedResumeData
	if err := json.Unmarshal([]byte(jsonText), &data); err != nil {
		return nil, &SchemaViolation{
			Schema: "ExtractedResumeData",
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}

	if data.ContactInfo != nil && data.ContactInfo.Email != nil {
		if err := emailValidator.Var(*data.ContactInfo.Email, "email"); err != nil {
			return nil, &SchemaViolation{
				Schema: "ExtractedResumeData",
				Errors: []FieldError{{
					Field:   "contact_info.email",
					Message: fmt.Sprintf("%q is not a valid email address", *data.ContactInfo.Email),
				}},
			}
		}
	}

	normalizeExtracted(&data)
	return &data, nil
}

// ValidateAnalysisResult validates a candidate JSON payload against the
// AnalysisResult schema and returns the normalized record. The rating
// range [1.0, 10.0] is enforced by the schema.
func ValidateAnalysisResult(jsonText string) (*types.AnalysisResult, error) {
	if err := validateAgainst(analysisResultSchema, "AnalysisResult", jsonText); err != nil {
		return nil, err
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return nil, &SchemaViolation{
			Schema: "AnalysisResult",
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}

	normalizeAnalysis(&result)
	return &result, nil
}

// normalizeExtracted fills every nil list with an empty slice so absent
// sections keep the declared shape of the record.
func normalizeExtracted(data *types.ExtractedResumeData) {
	if data.WorkExperience == nil {
		data.WorkExperience = []types.WorkExperienceItem{}
	}
	for i := range data.WorkExperience {
		if data.WorkExperience[i].Responsibilities == nil {
			data.WorkExperience[i].Responsibilities = []string{}
		}
	}
	if data.Education == nil {
		data.Education = []types.EducationItem{}
	}
	for i := range data.Education {
		if data.Education[i].RelevantCoursework == nil {
			data.Education[i].RelevantCoursework = []string{}
		}
	}
	if data.Projects == nil {
		data.Projects = []types.ProjectItem{}
	}
	for i := range data.Projects {
		if data.Projects[i].TechnologiesUsed == nil {
			data.Projects[i].TechnologiesUsed = []string{}
		}
	}
	if data.Certifications == nil {
		data.Certifications = []types.CertificationItem{}
	}
	if data.Awards == nil {
		data.Awards = []types.AwardItem{}
	}
	if data.Skills != nil {
		if data.Skills.Technical == nil {
			data.Skills.Technical = []types.SkillItem{}
		}
		if data.Skills.Soft == nil {
			data.Skills.Soft = []string{}
		}
		if data.Skills.Tools == nil {
			data.Skills.Tools = []types.SkillItem{}
		}
		if data.Skills.Languages == nil {
			data.Skills.Languages = []string{}
		}
	}
}

func normalizeAnalysis(result *types.AnalysisResult) {
	if result.StrengthAreas == nil {
		result.StrengthAreas = []string{}
	}
	if result.ImprovementAreas == nil {
		result.ImprovementAreas = []string{}
	}
	if result.UpskillSuggestions == nil {
		result.UpskillSuggestions = []types.UpskillSuggestion{}
	}
	for i := range result.UpskillSuggestions {
		if result.UpskillSuggestions[i].Resources == nil {
			result.UpskillSuggestions[i].Resources = []string{}
		}
	}
	if result.SuggestedKeywordsForATS == nil {
		result.SuggestedKeywordsForATS = []string{}
	}
	if result.PotentialRoles == nil {
		result.PotentialRoles = []string{}
	}
}
