package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Input-stage failures map to 400; gateway, extraction and persistence
// failures map to 500.
func HTTPStatus(err error) int {
	var (
		unsupported  *ingestion.UnsupportedFormatError
		encoding     *ingestion.EncodingError
		insufficient *pipeline.InsufficientTextError
		extraction   *pipeline.ExtractionError
		gateway      *llm.GatewayError
		persistence  *db.PersistenceError
	)

	switch {
	case errors.As(err, &unsupported), errors.As(err, &encoding), errors.As(err, &insufficient):
		return http.StatusBadRequest
	case errors.As(err, &extraction), errors.As(err, &gateway), errors.As(err, &persistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
