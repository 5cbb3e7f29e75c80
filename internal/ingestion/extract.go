// Package ingestion extracts raw text from uploaded resume documents.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText extracts plain text from an uploaded document based on
// its file extension. Unrecognized extensions fail with
// *UnsupportedFormatError; undecodable plain text fails with
// *EncodingError.
func ExtractText(filename string, data []byte) (string, error) {
	if filename == "" {
		return "", &UnsupportedFormatError{Extension: ""}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return extractPDFText(data)
	case "docx":
		return extractDocxText(data)
	case "txt":
		return extractPlainText(data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return CleanText(sb.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return CleanText(doc.Editable().GetContent()), nil
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &EncodingError{Message: "text file must be UTF-8 encoded"}
	}
	return CleanText(string(data)), nil
}
