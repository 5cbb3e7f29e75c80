package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Default page sizes for the read accessors.
const (
	DefaultListLimit    = 100
	DefaultSummaryLimit = 20
)

// CreateResumeParams holds the data persisted for one upload attempt.
// Extracted and Analysis may both be nil; the record is created anyway
// so the raw text is not lost.
type CreateResumeParams struct {
	FileName  string
	RawText   *string
	Extracted *types.ExtractedResumeData
	Analysis  *types.AnalysisResult
}

// CreateResume inserts a new resume record and returns it with the
// server-assigned id and upload timestamp. Records are never updated
// after creation.
func (db *DB) CreateResume(ctx context.Context, params CreateResumeParams) (*types.ResumeRecord, error) {
	record := flattenParams(params)

	contactJSON, err := marshalOrNil(record.ContactInfo)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Cause: err}
	}
	skillsJSON, err := marshalOrNil(record.Skills)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Cause: err}
	}
	analysisJSON, err := marshalOrNil(record.LLMAnalysis)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Cause: err}
	}

	var listJSON [5][]byte
	for i, section := range []any{
		record.WorkExperience, record.Education, record.Projects,
		record.Certifications, record.Awards,
	} {
		data, err := json.Marshal(section)
		if err != nil {
			return nil, &PersistenceError{Op: "create", Cause: fmt.Errorf("failed to marshal record section: %w", err)}
		}
		listJSON[i] = data
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (file_name, raw_text, contact_info, summary, work_experience,
		                      education, skills, projects, certifications, awards, llm_analysis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, uploaded_at`,
		record.FileName, record.RawText, contactJSON, record.Summary, listJSON[0],
		listJSON[1], skillsJSON, listJSON[2], listJSON[3], listJSON[4], analysisJSON,
	).Scan(&record.ID, &record.UploadedAt)
	if err != nil {
		return nil, &PersistenceError{Op: "create", Cause: err}
	}

	return record, nil
}

// GetResume retrieves a resume record by id. Returns nil without error
// when no record exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.ResumeRecord, error) {
	record, err := scanResume(db.pool.QueryRow(ctx,
		`SELECT id, file_name, raw_text, contact_info, summary, work_experience,
		        education, skills, projects, certifications, awards, llm_analysis, uploaded_at
		 FROM resumes WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "get", Cause: err}
	}
	return record, nil
}

// ListResumes retrieves full resume records ordered by upload time,
// newest first.
func (db *DB) ListResumes(ctx context.Context, offset, limit int) ([]types.ResumeRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, raw_text, contact_info, summary, work_experience,
		        education, skills, projects, certifications, awards, llm_analysis, uploaded_at
		 FROM resumes ORDER BY uploaded_at DESC OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Cause: err}
	}
	defer rows.Close()

	var records []types.ResumeRecord
	for rows.Next() {
		record, err := scanResume(rows)
		if err != nil {
			return nil, &PersistenceError{Op: "list", Cause: err}
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Cause: err}
	}
	return records, nil
}

// ListResumeSummaries retrieves the lightweight listing view, newest
// first, with the candidate name and email pulled from contact_info.
func (db *DB) ListResumeSummaries(ctx context.Context, offset, limit int) ([]types.ResumeSummary, error) {
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, file_name, uploaded_at, contact_info->>'name', contact_info->>'email'
		 FROM resumes ORDER BY uploaded_at DESC OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Cause: err}
	}
	defer rows.Close()

	var summaries []types.ResumeSummary
	for rows.Next() {
		var s types.ResumeSummary
		if err := rows.Scan(&s.ID, &s.FileName, &s.UploadedAt, &s.Name, &s.Email); err != nil {
			return nil, &PersistenceError{Op: "list", Cause: err}
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Cause: err}
	}
	return summaries, nil
}

// flattenParams spreads an optional extraction across the record's
// per-section fields, keeping every list present and non-nil.
func flattenParams(params CreateResumeParams) *types.ResumeRecord {
	record := &types.ResumeRecord{
		FileName:       params.FileName,
		RawText:        params.RawText,
		WorkExperience: []types.WorkExperienceItem{},
		Education:      []types.EducationItem{},
		Projects:       []types.ProjectItem{},
		Certifications: []types.CertificationItem{},
		Awards:         []types.AwardItem{},
		LLMAnalysis:    params.Analysis,
	}

	if extracted := params.Extracted; extracted != nil {
		record.ContactInfo = extracted.ContactInfo
		record.Summary = extracted.Summary
		record.Skills = extracted.Skills
		if extracted.WorkExperience != nil {
			record.WorkExperience = extracted.WorkExperience
		}
		if extracted.Education != nil {
			record.Education = extracted.Education
		}
		if extracted.Projects != nil {
			record.Projects = extracted.Projects
		}
		if extracted.Certifications != nil {
			record.Certifications = extracted.Certifications
		}
		if extracted.Awards != nil {
			record.Awards = extracted.Awards
		}
	}

	return record
}

func marshalOrNil[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record section: %w", err)
	}
	return data, nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (*types.ResumeRecord, error) {
	var (
		record       types.ResumeRecord
		contactJSON  []byte
		workJSON     []byte
		eduJSON      []byte
		skillsJSON   []byte
		projJSON     []byte
		certJSON     []byte
		awardJSON    []byte
		analysisJSON []byte
	)

	err := row.Scan(&record.ID, &record.FileName, &record.RawText, &contactJSON,
		&record.Summary, &workJSON, &eduJSON, &skillsJSON, &projJSON,
		&certJSON, &awardJSON, &analysisJSON, &record.UploadedAt)
	if err != nil {
		return nil, err
	}

	record.WorkExperience = []types.WorkExperienceItem{}
	record.Education = []types.EducationItem{}
	record.Projects = []types.ProjectItem{}
	record.Certifications = []types.CertificationItem{}
	record.Awards = []types.AwardItem{}

	for _, part := range []struct {
		data []byte
		dest any
	}{
		{contactJSON, &record.ContactInfo},
		{workJSON, &record.WorkExperience},
		{eduJSON, &record.Education},
		{skillsJSON, &record.Skills},
		{projJSON, &record.Projects},
		{certJSON, &record.Certifications},
		{awardJSON, &record.Awards},
		{analysisJSON, &record.LLMAnalysis},
	} {
		if len(part.data) == 0 {
			continue
		}
		if err := json.Unmarshal(part.data, part.dest); err != nil {
			return nil, fmt.Errorf("failed to decode record section: %w", err)
		}
	}

	return &record, nil
}
