package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSONFound is returned when no strategy recovers a parseable JSON
// payload from the model output.
var ErrNoJSONFound = errors.New("no JSON payload found in model output")

var jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")

// ExtractJSONPayload recovers a JSON payload from raw model output.
// Models are unreliable about surrounding prose, so this is a
// best-effort recovery layer, not a strict parser. Strategies are tried
// in order, first successful parse wins:
//
//  1. the interior of a ```json fenced block
//  2. the span from the first '{' to the last '}'
//  3. the whole trimmed string
//
// A failed parse moves on to the next strategy; only exhausting all
// three yields ErrNoJSONFound.
func ExtractJSONPayload(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrNoJSONFound
	}

	if m := jsonFenceRe.FindStringSubmatch(trimmed); m != nil {
		if candidate := strings.TrimSpace(m[1]); parses(candidate) {
			return candidate, nil
		}
	}

	first := strings.Index(trimmed, "{")
	last := strings.LastIndex(trimmed, "}")
	if first != -1 && last > first {
		if candidate := trimmed[first : last+1]; parses(candidate) {
			return candidate, nil
		}
	}

	if parses(trimmed) {
		return trimmed, nil
	}

	return "", ErrNoJSONFound
}

func parses(candidate string) bool {
	var v any
	return json.Unmarshal([]byte(candidate), &v) == nil
}
