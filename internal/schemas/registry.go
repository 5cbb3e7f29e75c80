package schemas

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed extracted_resume.json
var extractedResumeSchemaJSON string

//go:embed analysis_result.json
var analysisResultSchemaJSON string

// Schemas are compiled once at init; the documents are embedded at
// build time, so a failure here is a programming error.
var (
	extractedResumeSchema = mustCompile(extractedResumeSchemaJSON)
	analysisResultSchema  = mustCompile(analysisResultSchemaJSON)
)

func mustCompile(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic("schemas: invalid embedded schema document: " + err.Error())
	}
	return schema
}

// ExtractedResumeSchema returns the serialized ExtractedResumeData
// schema document for embedding into model prompts.
func ExtractedResumeSchema() string {
	return extractedResumeSchemaJSON
}

// AnalysisResultSchema returns the serialized AnalysisResult schema
// document for embedding into model prompts.
func AnalysisResultSchema() string {
	return analysisResultSchemaJSON
}
