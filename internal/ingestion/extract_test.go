package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("John Doe\nSoftware Engineer\n"))
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer", text)
}

func TestExtractText_UppercaseExtension(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"Image file", "resume.png"},
		{"No extension", "resume"},
		{"Empty filename", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText(tt.filename, []byte("data"))
			var unsupported *UnsupportedFormatError
			require.ErrorAs(t, err, &unsupported)
		})
	}
}

func TestExtractText_InvalidEncoding(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte{0xff, 0xfe, 0xfd})
	var encoding *EncodingError
	require.ErrorAs(t, err, &encoding)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "CRLF normalized",
			input:    "line one\r\nline two\r",
			expected: "line one\nline two",
		},
		{
			name:     "Runs of spaces collapse",
			input:    "John    Doe\tSoftware   Engineer",
			expected: "John Doe Software Engineer",
		},
		{
			name:     "Excessive blank lines capped",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "Surrounding whitespace trimmed",
			input:    "  \n content \n  ",
			expected: "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
