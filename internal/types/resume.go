// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// ContactInfo holds the candidate's contact details. Every field is
// independently optional; the extractor omits what the resume does not state.
type ContactInfo struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	LinkedIn     *string `json:"linkedin,omitempty"`
	GitHub       *string `json:"github,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
}

// WorkExperienceItem is a single employment entry. Dates are free-form
// strings ("YYYY-MM-DD", "YYYY-MM", "YYYY" or "Present" by convention,
// never parsed here).
type WorkExperienceItem struct {
	Company          *string  `json:"company,omitempty"`
	Role             *string  `json:"role,omitempty"`
	Location         *string  `json:"location,omitempty"`
	StartDate        *string  `json:"start_date,omitempty"`
	EndDate          *string  `json:"end_date,omitempty"`
	DurationMonths   *int     `json:"duration_months,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Description      *string  `json:"description,omitempty"`
}

// EducationItem is a single education entry. GPA is a string on purpose
// so values like "3.8/4.0" survive intact.
type EducationItem struct {
	Institution        *string  `json:"institution,omitempty"`
	Degree             *string  `json:"degree,omitempty"`
	Major              *string  `json:"major,omitempty"`
	StartDate          *string  `json:"start_date,omitempty"`
	EndDate            *string  `json:"end_date,omitempty"`
	GPA                *string  `json:"gpa,omitempty"`
	Location           *string  `json:"location,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework"`
}

// SkillItem is a named skill with an optional proficiency level.
type SkillItem struct {
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency,omitempty"`
}

// SkillSet groups skills into four independent lists.
type SkillSet struct {
	Technical []SkillItem `json:"technical"`
	Soft      []string    `json:"soft"`
	Tools     []SkillItem `json:"tools"`
	Languages []string    `json:"languages"`
}

// ProjectItem is a single project entry.
type ProjectItem struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	TechnologiesUsed []string `json:"technologies_used"`
	Link             *string  `json:"link,omitempty"`
	RepoLink         *string  `json:"repo_link,omitempty"`
}

// CertificationItem is a single certification entry.
type CertificationItem struct {
	Name           *string `json:"name,omitempty"`
	Issuer         *string `json:"issuer,omitempty"`
	IssueDate      *string `json:"issue_date,omitempty"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
	CredentialID   *string `json:"credential_id,omitempty"`
	CredentialURL  *string `json:"credential_url,omitempty"`
}

// AwardItem is a single award or honor entry.
type AwardItem struct {
	Name        *string `json:"name,omitempty"`
	Issuer      *string `json:"issuer,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ExtractedResumeData is the full structured extraction of a resume.
// Absent sections are empty lists or nil, never missing from the shape.
type ExtractedResumeData struct {
	ContactInfo    *ContactInfo         `json:"contact_info,omitempty"`
	Summary        *string              `json:"summary,omitempty"`
	WorkExperience []WorkExperienceItem `json:"work_experience"`
	Education      []EducationItem      `json:"education"`
	Skills         *SkillSet            `json:"skills,omitempty"`
	Projects       []ProjectItem        `json:"projects"`
	Certifications []CertificationItem  `json:"certifications"`
	Awards         []AwardItem          `json:"awards"`
}
