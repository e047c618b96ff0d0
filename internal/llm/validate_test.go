package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "grading-result",
		Description: "A single graded item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"index":  map[string]any{"type": "integer", "minimum": 0},
				"score":  map[string]any{"type": "number", "minimum": 0},
				"reason": map[string]any{"type": "string"},
			},
			"required": []any{"index", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"index":0,"score":7.5,"reason":"partially correct"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"index":1,"score":0}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"index":0}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"index":0,"score":"ten"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"index":0,`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything at all`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}
