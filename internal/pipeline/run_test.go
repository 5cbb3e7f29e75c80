package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// stubGateway returns canned responses in call order.
type stubGateway struct {
	responses []string
	errs      []error
	calls     int
	prompts   []llm.Prompt
}

func (g *stubGateway) Invoke(_ context.Context, prompt llm.Prompt, _ llm.ModelTier) (string, error) {
	idx := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)
	var err error
	if idx < len(g.errs) {
		err = g.errs[idx]
	}
	if err != nil {
		return "", err
	}
	if idx < len(g.responses) {
		return g.responses[idx], nil
	}
	return "", &llm.GatewayError{Op: "invoke", Message: "no stubbed response"}
}

// stubStore records created params in memory.
type stubStore struct {
	created   []db.CreateResumeParams
	records   map[uuid.UUID]*types.ResumeRecord
	createErr error
}

func newStubStore() *stubStore {
	return &stubStore{records: make(map[uuid.UUID]*types.ResumeRecord)}
}

func (s *stubStore) CreateResume(_ context.Context, params db.CreateResumeParams) (*types.ResumeRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, params)

	record := &types.ResumeRecord{
		ID:             uuid.New(),
		FileName:       params.FileName,
		RawText:        params.RawText,
		UploadedAt:     time.Now(),
		WorkExperience: []types.WorkExperienceItem{},
		Education:      []types.EducationItem{},
		Projects:       []types.ProjectItem{},
		Certifications: []types.CertificationItem{},
		Awards:         []types.AwardItem{},
		LLMAnalysis:    params.Analysis,
	}
	if params.Extracted != nil {
		record.ContactInfo = params.Extracted.ContactInfo
		record.Summary = params.Extracted.Summary
		record.Skills = params.Extracted.Skills
		record.WorkExperience = params.Extracted.WorkExperience
		record.Education = params.Extracted.Education
		record.Projects = params.Extracted.Projects
		record.Certifications = params.Extracted.Certifications
		record.Awards = params.Extracted.Awards
	}
	s.records[record.ID] = record
	return record, nil
}

func (s *stubStore) GetResume(_ context.Context, id uuid.UUID) (*types.ResumeRecord, error) {
	return s.records[id], nil
}

func (s *stubStore) ListResumes(_ context.Context, _, _ int) ([]types.ResumeRecord, error) {
	var records []types.ResumeRecord
	for _, r := range s.records {
		records = append(records, *r)
	}
	return records, nil
}

func (s *stubStore) ListResumeSummaries(_ context.Context, _, _ int) ([]types.ResumeSummary, error) {
	var summaries []types.ResumeSummary
	for _, r := range s.records {
		summaries = append(summaries, types.ResumeSummary{ID: r.ID, FileName: r.FileName, UploadedAt: r.UploadedAt})
	}
	return summaries, nil
}

const longResumeText = "John Doe, Software Engineer at Acme Corp, 2019-01 to 2021-06, built distributed systems in Go."

const extractionResponse = "```json\n" +
	`{"contact_info": {"name": "John Doe", "email": "john@example.com"},
	  "work_experience": [{"company": "Acme Corp", "role": "Software Engineer",
	                       "start_date": "2019-01", "end_date": "2021-06"}]}` +
	"\n```"

const analysisResponse = "```json\n" +
	`{"resume_rating": 7.5, "overall_feedback": "Solid engineering resume.",
	  "strength_areas": ["Go experience", "Distributed systems"],
	  "improvement_areas": ["Add metrics", "Quantify impact", "Tighten summary"],
	  "suggested_keywords_for_ats": ["Go", "microservices", "Kubernetes"],
	  "potential_roles": ["Backend Engineer"]}` +
	"\n```"

func TestProcessUpload_InsufficientText(t *testing.T) {
	gateway := &stubGateway{}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "short.txt", "short text")

	var insufficient *InsufficientTextError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 10, insufficient.Length)

	// Gateway never called; record persisted with both structured fields null.
	assert.Equal(t, 0, gateway.calls)
	require.Len(t, store.created, 1)
	assert.Nil(t, store.created[0].Extracted)
	assert.Nil(t, store.created[0].Analysis)
	require.NotNil(t, store.created[0].RawText)
	assert.Equal(t, "short text", *store.created[0].RawText)
	assert.Equal(t, StatePersisted, result.State)
}

func TestProcessUpload_ThresholdCountsCharactersNotBytes(t *testing.T) {
	gateway := &stubGateway{}
	store := newStubStore()
	p := New(gateway, store)

	// 12 CJK characters occupy 36 bytes but are still below the
	// 30-character minimum.
	text := strings.Repeat("简", 12)
	require.GreaterOrEqual(t, len(text), MinUsableTextLength)

	_, err := p.ProcessUpload(context.Background(), "short_cjk.txt", text)

	var insufficient *InsufficientTextError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 12, insufficient.Length)
	assert.Equal(t, 0, gateway.calls)
	require.Len(t, store.created, 1)

	// 30 characters exactly clears the gate and reaches the gateway.
	gateway2 := &stubGateway{responses: []string{extractionResponse, analysisResponse}}
	p2 := New(gateway2, newStubStore())
	_, err = p2.ProcessUpload(context.Background(), "long_cjk.txt", strings.Repeat("简", 30))
	require.NoError(t, err)
	assert.Equal(t, 2, gateway2.calls)
}

func TestProcessUpload_EmptyTextStoresPlaceholder(t *testing.T) {
	store := newStubStore()
	p := New(&stubGateway{}, store)

	_, err := p.ProcessUpload(context.Background(), "empty.txt", "   ")

	var insufficient *InsufficientTextError
	require.ErrorAs(t, err, &insufficient)
	require.Len(t, store.created, 1)
	require.NotNil(t, store.created[0].RawText)
	assert.Equal(t, "Extraction failed or empty", *store.created[0].RawText)
}

func TestProcessUpload_GatewayFailureOnExtraction(t *testing.T) {
	gateway := &stubGateway{errs: []error{&llm.GatewayError{Op: "invoke", Message: "transport failure"}}}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "resume.txt", longResumeText)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.True(t, result.ExtractionFailed)
	assert.False(t, result.AnalysisFailed)
	assert.Equal(t, StatePersisted, result.State)

	// Raw text persisted, structured fields null, no analysis call made.
	assert.Equal(t, 1, gateway.calls)
	require.Len(t, store.created, 1)
	require.NotNil(t, store.created[0].RawText)
	assert.Equal(t, longResumeText, *store.created[0].RawText)
	assert.Nil(t, store.created[0].Extracted)
	assert.Nil(t, store.created[0].Analysis)
}

func TestProcessUpload_NoJSONInModelOutput(t *testing.T) {
	gateway := &stubGateway{responses: []string{"I am sorry, I cannot help with that."}}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "resume.txt", longResumeText)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.ErrorIs(t, extraction.Cause, llm.ErrNoJSONFound)
	assert.True(t, result.ExtractionFailed)
	assert.Equal(t, 1, gateway.calls)
	require.Len(t, store.created, 1)
}

func TestProcessUpload_SchemaViolationCollapsesToFailure(t *testing.T) {
	gateway := &stubGateway{responses: []string{`{"work_experience": "none"}`}}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "resume.txt", longResumeText)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.True(t, result.ExtractionFailed)
	require.Len(t, store.created, 1)
	assert.Nil(t, store.created[0].Extracted)
}

func TestProcessUpload_AnalysisFailureStillPersistsExtraction(t *testing.T) {
	gateway := &stubGateway{
		responses: []string{extractionResponse},
		errs:      []error{nil, &llm.GatewayError{Op: "invoke", Message: "transport failure"}},
	}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "resume.txt", longResumeText)

	// Analysis is optional: no error surfaced, only the flag.
	require.NoError(t, err)
	assert.False(t, result.ExtractionFailed)
	assert.True(t, result.AnalysisFailed)
	assert.Equal(t, StatePersisted, result.State)

	assert.Equal(t, 2, gateway.calls)
	require.Len(t, store.created, 1)
	require.NotNil(t, store.created[0].Extracted)
	assert.Nil(t, store.created[0].Analysis)
	require.NotNil(t, result.Record)
	require.NotNil(t, result.Record.ContactInfo)
	assert.Equal(t, "John Doe", *result.Record.ContactInfo.Name)
}

func TestProcessUpload_EndToEnd(t *testing.T) {
	gateway := &stubGateway{responses: []string{extractionResponse, analysisResponse}}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "john_doe.pdf", longResumeText)
	require.NoError(t, err)

	assert.Equal(t, StatePersisted, result.State)
	assert.False(t, result.ExtractionFailed)
	assert.False(t, result.AnalysisFailed)
	assert.Equal(t, 2, gateway.calls)

	record := result.Record
	require.NotNil(t, record)
	require.NotNil(t, record.ContactInfo)
	assert.Equal(t, "John Doe", *record.ContactInfo.Name)
	require.Len(t, record.WorkExperience, 1)
	assert.Equal(t, "Acme Corp", *record.WorkExperience[0].Company)

	require.NotNil(t, record.LLMAnalysis)
	require.NotNil(t, record.LLMAnalysis.ResumeRating)
	assert.InDelta(t, 7.5, *record.LLMAnalysis.ResumeRating, 0.001)
	assert.Len(t, record.LLMAnalysis.ImprovementAreas, 3)

	// The analysis prompt carries the extracted record, not the raw text.
	require.Len(t, gateway.prompts, 2)
	assert.Contains(t, gateway.prompts[0].User, longResumeText)
	assert.Contains(t, gateway.prompts[1].User, "John Doe")
}

func TestProcessUpload_PersistenceFailurePropagates(t *testing.T) {
	gateway := &stubGateway{responses: []string{extractionResponse, analysisResponse}}
	store := newStubStore()
	store.createErr = &db.PersistenceError{Op: "create", Cause: errors.New("connection refused")}
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "resume.txt", longResumeText)

	var persistence *db.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.NotEqual(t, StatePersisted, result.State)
	assert.Nil(t, result.Record)
}

func TestReadAccessorsDelegate(t *testing.T) {
	gateway := &stubGateway{responses: []string{extractionResponse, analysisResponse}}
	store := newStubStore()
	p := New(gateway, store)

	result, err := p.ProcessUpload(context.Background(), "resume.txt", longResumeText)
	require.NoError(t, err)

	record, err := p.GetRecord(context.Background(), result.Record.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, result.Record.ID, record.ID)

	missing, err := p.GetRecord(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	records, err := p.ListRecords(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	summaries, err := p.ListRecordSummaries(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}
