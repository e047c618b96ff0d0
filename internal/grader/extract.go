package grader

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// rawResult is one entry of the model's grading array before reconciliation.
// Index is a pointer so "missing" and "0" stay distinguishable; Score stays
// raw because models emit numbers, quoted numbers, or garbage.
type rawResult struct {
	Index  *int            `json:"index"`
	Score  json.RawMessage `json:"score"`
	Reason string          `json:"reason"`
}

// parseResults recovers a grading array from free-text model output via an
// ordered best-effort chain: strip code fences, parse directly, reparse the
// outermost bracketed substring, then retry with unescaped backslashes
// doubled. A single object is accepted as a one-element array. Returns an
// error only when every step fails.
func parseResults(text string) ([]rawResult, error) {
	text = stripCodeFences(text)

	if results, err := parseResultsJSON(text); err == nil {
		return results, nil
	}

	candidate, ok := extractBracketed(text)
	if !ok {
		return nil, fmt.Errorf("no JSON array or object found in model output")
	}

	if results, err := parseResultsJSON(candidate); err == nil {
		return results, nil
	}

	// Models sometimes emit lone backslashes (LaTeX fragments, windows
	// paths) that break JSON string escaping.
	repaired := doubleUnescapedBackslashes(candidate)
	results, err := parseResultsJSON(repaired)
	if err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	return results, nil
}

// parseResultsJSON parses text as a result array, accepting a single
// object as a one-element array.
func parseResultsJSON(text string) ([]rawResult, error) {
	text = strings.TrimSpace(text)

	var results []rawResult
	if err := json.Unmarshal([]byte(text), &results); err == nil {
		return results, nil
	}

	var single rawResult
	if err := json.Unmarshal([]byte(text), &single); err != nil {
		return nil, err
	}
	return []rawResult{single}, nil
}

// stripCodeFences removes markdown code-fence lines (``` or ```json)
// wrapping the payload.
func stripCodeFences(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// extractBracketed returns the outermost [...] substring, falling back to
// the outermost {...} when no array is present.
func extractBracketed(text string) (string, bool) {
	for _, pair := range [][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(text, pair[0])
		end := strings.LastIndex(text, pair[1])
		if start >= 0 && end > start {
			return text[start : end+1], true
		}
	}
	return "", false
}

// jsonEscapes are the characters that may legally follow a backslash in a
// JSON string.
const jsonEscapes = `"\/bfnrtu`

// doubleUnescapedBackslashes doubles every backslash that does not start a
// valid JSON escape sequence, so stray ones survive the parser.
func doubleUnescapedBackslashes(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(text) && strings.IndexByte(jsonEscapes, text[i+1]) >= 0 {
			// Valid escape: copy both characters through untouched.
			b.WriteByte(c)
			b.WriteByte(text[i+1])
			i++
			continue
		}
		b.WriteString(`\\`)
	}
	return b.String()
}

// coerceScore turns a raw score value into a float64. Accepts numbers and
// numeric strings; anything else (or nothing) is 0.
func coerceScore(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}

	return 0
}
