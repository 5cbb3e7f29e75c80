package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPayload(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantError bool
	}{
		{
			name:     "Fenced JSON block",
			input:    "```json\n{\"name\": \"John\"}\n```",
			expected: `{"name": "John"}`,
		},
		{
			name:     "Fenced block with surrounding prose",
			input:    "Here is the data you asked for:\n```json\n{\"name\": \"John\"}\n```\nLet me know if you need more.",
			expected: `{"name": "John"}`,
		},
		{
			name:     "Braces without fence",
			input:    "Sure! {\"rating\": 8.5} Hope that helps.",
			expected: `{"rating": 8.5}`,
		},
		{
			name:     "Brace span recovered verbatim",
			input:    "prefix {\"a\": {\"b\": 1}} suffix",
			expected: `{"a": {"b": 1}}`,
		},
		{
			name:     "Plain JSON object",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "Whole-string JSON array with no braces",
			input:    `[1, 2, 3]`,
			expected: `[1, 2, 3]`,
		},
		{
			name:     "Invalid fence interior falls through to brace span",
			input:    "```json\nnot json at all\n```\n{\"ok\": true}",
			expected: `{"ok": true}`,
		},
		{
			name:      "No braces and invalid JSON",
			input:     "I could not process the resume, sorry.",
			wantError: true,
		},
		{
			name:      "Empty string",
			input:     "",
			wantError: true,
		},
		{
			name:      "Braces spanning invalid JSON",
			input:     "{this is not json}",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ExtractJSONPayload(tt.input)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrNoJSONFound)
				assert.Empty(t, payload)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, payload)
			}
		})
	}
}
