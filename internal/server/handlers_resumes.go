package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadBytes caps the multipart form size for resume uploads.
const maxUploadBytes = 10 << 20

// handleUploadResume accepts a resume document, runs the extraction and
// analysis pipeline, and returns the persisted record.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	contents, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	rawText, err := ingestion.ExtractText(header.Filename, contents)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.pipeline.ProcessUpload(r.Context(), header.Filename, rawText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, result.Record)
}

// handleListResumes returns resume summaries newest-first. The optional
// full=true query switches to complete records.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)

	if r.URL.Query().Get("full") == "true" {
		limit := queryInt(r, "limit", db.DefaultListLimit)
		records, err := s.pipeline.ListRecords(r.Context(), skip, limit)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if records == nil {
			records = []types.ResumeRecord{}
		}
		s.jsonResponse(w, http.StatusOK, records)
		return
	}

	limit := queryInt(r, "limit", db.DefaultSummaryLimit)
	summaries, err := s.pipeline.ListRecordSummaries(r.Context(), skip, limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if summaries == nil {
		summaries = []types.ResumeSummary{}
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetResume returns a single resume record by id.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return
	}

	record, err := s.pipeline.GetRecord(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// queryInt reads a non-negative integer query parameter with a default.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
