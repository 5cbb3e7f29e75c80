package types

// UpskillSuggestion is one recommended skill with the reason it matters
// and optional learning resources.
type UpskillSuggestion struct {
	Skill     string   `json:"skill"`
	Reason    string   `json:"reason"`
	Resources []string `json:"resources"`
}

// AnalysisResult is the qualitative review the model produces from an
// ExtractedResumeData record. Rating, when present, is in [1.0, 10.0].
type AnalysisResult struct {
	ResumeRating            *float64            `json:"resume_rating,omitempty"`
	OverallFeedback         *string             `json:"overall_feedback,omitempty"`
	StrengthAreas           []string            `json:"strength_areas"`
	ImprovementAreas        []string            `json:"improvement_areas"`
	UpskillSuggestions      []UpskillSuggestion `json:"upskill_suggestions"`
	SuggestedKeywordsForATS []string            `json:"suggested_keywords_for_ats"`
	PotentialRoles          []string            `json:"potential_roles"`
}
