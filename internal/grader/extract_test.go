package grader

import (
	"encoding/json"
	"testing"
)

func TestParseResults_DirectArray(t *testing.T) {
	results, err := parseResults(`[{"index":0,"score":10,"reason":"correct"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if *results[0].Index != 0 || coerceScore(results[0].Score) != 10 {
		t.Fatalf("result = %+v", results[0])
	}
}

func TestParseResults_MarkdownFences(t *testing.T) {
	raw := "```json\n[{\"index\":0,\"score\":4},{\"index\":1,\"score\":2}]\n```"
	results, err := parseResults(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestParseResults_ProseWrappedArray(t *testing.T) {
	raw := `Here are the grades you asked for:
[{"index":0,"score":3,"reason":"partial"}]
Let me know if you need anything else.`
	results, err := parseResults(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || coerceScore(results[0].Score) != 3 {
		t.Fatalf("results = %+v", results)
	}
}

func TestParseResults_SingleObjectCoerced(t *testing.T) {
	results, err := parseResults(`{"index":0,"score":5,"reason":"ok"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestParseResults_StrayBackslashes(t *testing.T) {
	// A lone \O and \m are invalid JSON escapes; the repair pass doubles
	// them so the parse succeeds.
	raw := `[{"index":0,"score":8,"reason":"used \Omega instead of \mathrm{k}\Omega"}]`
	results, err := parseResults(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || coerceScore(results[0].Score) != 8 {
		t.Fatalf("results = %+v", results)
	}
}

func TestParseResults_Unrecoverable(t *testing.T) {
	for _, raw := range []string{
		"",
		"I cannot grade these items.",
		"[1, 2, 3",
		`"just a string"`,
	} {
		if _, err := parseResults(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"```json\n[]\n```", "[]"},
		{"```\n[]\n```", "[]"},
		{"[]", "[]"},
		{"  ```json\n[1]\n  ```  ", "[1]"},
	}
	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractBracketed(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"noise [1,2] tail", "[1,2]", true},
		{"prefix {\"a\":1} suffix", "{\"a\":1}", true},
		{"prefers [array] over {object}", "[array]", true},
		{"nothing here", "", false},
	}
	for _, tt := range tests {
		got, ok := extractBracketed(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractBracketed(%q) = %q, %t; want %q, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDoubleUnescapedBackslashes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`a\nb`, `a\nb`},       // valid escape kept
		{`a\Omega`, `a\\Omega`}, // invalid escape doubled
		{`path\`, `path\\`},     // trailing backslash doubled
		{`a\\b`, `a\\b`},        // already escaped pair untouched
	}
	for _, tt := range tests {
		if got := doubleUnescapedBackslashes(tt.in); got != tt.want {
			t.Errorf("doubleUnescapedBackslashes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoerceScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`10`, 10},
		{`7.5`, 7.5},
		{`"6"`, 6},
		{`" 3.5 "`, 3.5},
		{`"full marks"`, 0},
		{`null`, 0},
		{`true`, 0},
		{``, 0},
	}
	for _, tt := range tests {
		if got := coerceScore(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("coerceScore(%q) = %g, want %g", tt.raw, got, tt.want)
		}
	}
}
