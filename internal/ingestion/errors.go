package ingestion

import "fmt"

// UnsupportedFormatError indicates the uploaded file has an extension
// this system cannot extract text from.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: .%s. Please upload PDF, DOCX, or TXT", e.Extension)
}

// EncodingError indicates plain-text content that could not be decoded.
type EncodingError struct {
	Message string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Message)
}
