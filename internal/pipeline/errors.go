package pipeline

import "fmt"

// InsufficientTextError indicates the extracted text was below the
// minimum usable length. The record is still persisted before this is
// returned to the caller.
type InsufficientTextError struct {
	Length int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("could not extract sufficient text from resume (%d usable characters, need %d)",
		e.Length, MinUsableTextLength)
}

// ExtractionError indicates the model failed to produce a
// schema-conformant extraction. The raw text has already been persisted
// when this is returned.
type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("LLM failed to extract structured data (raw text has been saved): %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
