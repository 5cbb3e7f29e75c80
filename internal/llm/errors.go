package llm

import "fmt"

// GatewayError represents a failure talking to the LLM provider:
// missing credentials at construction, a transport failure, or an
// empty response. The gateway never retries; that is the caller's call.
type GatewayError struct {
	Op      string
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm gateway %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("llm gateway %s: %s", e.Op, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
