package types

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is the persisted entity for one upload attempt. It is
// created exactly once per upload, even when extraction or analysis
// failed, and is never updated afterwards.
type ResumeRecord struct {
	ID         uuid.UUID `json:"id"`
	FileName   string    `json:"file_name"`
	RawText    *string   `json:"raw_text,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`

	ContactInfo    *ContactInfo         `json:"contact_info,omitempty"`
	Summary        *string              `json:"summary,omitempty"`
	WorkExperience []WorkExperienceItem `json:"work_experience"`
	Education      []EducationItem      `json:"education"`
	Skills         *SkillSet            `json:"skills,omitempty"`
	Projects       []ProjectItem        `json:"projects"`
	Certifications []CertificationItem  `json:"certifications"`
	Awards         []AwardItem          `json:"awards"`

	LLMAnalysis *AnalysisResult `json:"llm_analysis,omitempty"`
}

// ExtractedData reassembles the flattened sections into an
// ExtractedResumeData value, or nil if the record has none.
func (r *ResumeRecord) ExtractedData() *ExtractedResumeData {
	if r.ContactInfo == nil && r.Summary == nil && r.Skills == nil &&
		len(r.WorkExperience) == 0 && len(r.Education) == 0 &&
		len(r.Projects) == 0 && len(r.Certifications) == 0 && len(r.Awards) == 0 {
		return nil
	}
	return &ExtractedResumeData{
		ContactInfo:    r.ContactInfo,
		Summary:        r.Summary,
		WorkExperience: r.WorkExperience,
		Education:      r.Education,
		Skills:         r.Skills,
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Awards:         r.Awards,
	}
}

// ResumeSummary is the lightweight listing view of a record.
type ResumeSummary struct {
	ID         uuid.UUID `json:"id"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
}
