// Package pipeline orchestrates the extraction/analysis state machine
// for one uploaded resume.
package pipeline

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// State identifies where a request is in its lifecycle.
type State string

// Pipeline states. Every request terminates in StatePersisted unless
// persistence itself fails.
const (
	StateReceived            State = "RECEIVED"
	StateTextReady           State = "TEXT_READY"
	StateExtractionRequested State = "EXTRACTION_REQUESTED"
	StateExtracted           State = "EXTRACTED"
	StateExtractionFailed    State = "EXTRACTION_FAILED"
	StateAnalysisRequested   State = "ANALYSIS_REQUESTED"
	StateAnalyzed            State = "ANALYZED"
	StateAnalysisFailed      State = "ANALYSIS_FAILED"
	StatePersisted           State = "PERSISTED"
)

// MinUsableTextLength is the minimum trimmed text length worth sending
// to the model.
const MinUsableTextLength = 30

// failurePlaceholder is stored as raw text when extraction produced
// nothing at all, so the failed attempt still leaves a trace.
const failurePlaceholder = "Extraction failed or empty"

// Gateway invokes the external model. llm.Client satisfies it.
type Gateway interface {
	Invoke(ctx context.Context, prompt llm.Prompt, tier llm.ModelTier) (string, error)
}

// RecordStore is the persistence collaborator. *db.DB satisfies it.
type RecordStore interface {
	CreateResume(ctx context.Context, params db.CreateResumeParams) (*types.ResumeRecord, error)
	GetResume(ctx context.Context, id uuid.UUID) (*types.ResumeRecord, error)
	ListResumes(ctx context.Context, offset, limit int) ([]types.ResumeRecord, error)
	ListResumeSummaries(ctx context.Context, offset, limit int) ([]types.ResumeSummary, error)
}

// Result reports the terminal state of one upload request.
type Result struct {
	State            State
	Record           *types.ResumeRecord
	ExtractionFailed bool
	AnalysisFailed   bool
}

// Pipeline processes uploads. It holds no per-request mutable state and
// is safe for concurrent use.
type Pipeline struct {
	gateway Gateway
	store   RecordStore
}

// New creates a pipeline with its injected collaborators.
func New(gateway Gateway, store RecordStore) *Pipeline {
	return &Pipeline{gateway: gateway, store: store}
}

// ProcessUpload runs the full state machine for one upload: prompt
// build, gateway call, tolerant JSON recovery, schema validation, a
// second pass for analysis, and exactly one persistence call. Stage
// failures collapse to their FAILED states and the record is persisted
// with whatever was obtained; only input-stage and persistence-stage
// failures propagate as typed errors.
func (p *Pipeline) ProcessUpload(ctx context.Context, fileName, rawText string) (*Result, error) {
	result := &Result{State: StateReceived}

	trimmed := strings.TrimSpace(rawText)
	result.State = StateTextReady

	// Character count, not bytes: a short CJK resume must still trip the gate.
	if length := utf8.RuneCountInString(trimmed); length < MinUsableTextLength {
		// Recorded failure, not a dropped request: persist what we have.
		stored := rawText
		if trimmed == "" {
			stored = failurePlaceholder
		}
		if err := p.persist(ctx, result, fileName, &stored, nil, nil); err != nil {
			return result, err
		}
		log.Printf("pipeline: insufficient text for %s (%d usable chars)", fileName, length)
		return result, &InsufficientTextError{Length: length}
	}

	result.State = StateExtractionRequested
	extracted, cause := p.runExtraction(ctx, trimmed)
	if cause != nil {
		result.State = StateExtractionFailed
		result.ExtractionFailed = true
		log.Printf("pipeline: extraction failed for %s: %v", fileName, cause)
		if err := p.persist(ctx, result, fileName, &rawText, nil, nil); err != nil {
			return result, err
		}
		return result, &ExtractionError{Cause: cause}
	}
	result.State = StateExtracted

	result.State = StateAnalysisRequested
	analysis, cause := p.runAnalysis(ctx, extracted)
	if cause != nil {
		// Analysis is strictly optional; its absence never blocks
		// persistence of the extraction.
		result.State = StateAnalysisFailed
		result.AnalysisFailed = true
		log.Printf("pipeline: analysis failed for %s: %v", fileName, cause)
	} else {
		result.State = StateAnalyzed
	}

	if err := p.persist(ctx, result, fileName, &rawText, extracted, analysis); err != nil {
		return result, err
	}
	return result, nil
}

// runExtraction performs the build/invoke/extract/validate sequence for
// structured extraction. Any failure is returned as the stage cause.
func (p *Pipeline) runExtraction(ctx context.Context, resumeText string) (*types.ExtractedResumeData, error) {
	prompt := prompts.BuildExtractionPrompt(resumeText)

	response, err := p.gateway.Invoke(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ExtractJSONPayload(response)
	if err != nil {
		return nil, err
	}

	return schemas.ValidateExtractedResume(payload)
}

// runAnalysis performs the same sequence against the AnalysisResult
// schema, using the extracted record as input.
func (p *Pipeline) runAnalysis(ctx context.Context, extracted *types.ExtractedResumeData) (*types.AnalysisResult, error) {
	prompt, err := prompts.BuildAnalysisPrompt(extracted)
	if err != nil {
		return nil, err
	}

	response, err := p.gateway.Invoke(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ExtractJSONPayload(response)
	if err != nil {
		return nil, err
	}

	return schemas.ValidateAnalysisResult(payload)
}

// persist invokes the persistence collaborator exactly once. A failure
// here is the one unrecoverable data-loss path, so it is logged.
func (p *Pipeline) persist(ctx context.Context, result *Result, fileName string,
	rawText *string, extracted *types.ExtractedResumeData, analysis *types.AnalysisResult) error {

	record, err := p.store.CreateResume(ctx, db.CreateResumeParams{
		FileName:  fileName,
		RawText:   rawText,
		Extracted: extracted,
		Analysis:  analysis,
	})
	if err != nil {
		log.Printf("pipeline: LOST DATA, failed to persist record for %s: %v", fileName, err)
		return err
	}

	result.Record = record
	result.State = StatePersisted
	return nil
}

// GetRecord retrieves a persisted record; nil when not found.
func (p *Pipeline) GetRecord(ctx context.Context, id uuid.UUID) (*types.ResumeRecord, error) {
	return p.store.GetResume(ctx, id)
}

// ListRecords retrieves full records ordered by upload time, descending.
func (p *Pipeline) ListRecords(ctx context.Context, offset, limit int) ([]types.ResumeRecord, error) {
	return p.store.ListResumes(ctx, offset, limit)
}

// ListRecordSummaries retrieves the lightweight listing view.
func (p *Pipeline) ListRecordSummaries(ctx context.Context, offset, limit int) ([]types.ResumeSummary, error) {
	return p.store.ListResumeSummaries(ctx, offset, limit)
}
