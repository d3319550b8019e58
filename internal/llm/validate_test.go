package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-score",
	Description: "A score with a reason",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 10,
			},
			"reason": map[string]any{"type": "string"},
		},
		"required":             []any{"score", "reason"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"score": 7, "reason": "solid"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{{`},
		{"missing field", `{"score": 7}`},
		{"out of range", `{"score": 42, "reason": "too high"}`},
		{"wrong type", `{"score": "seven", "reason": "string score"}`},
		{"extra field", `{"score": 7, "reason": "r", "bonus": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything at all`)); err != nil {
		t.Fatalf("nil schema must skip validation, got %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"score": 3, "reason": "cached"}`)
	for range 3 {
		if err := validateResponse(testSchema, raw); err != nil {
			t.Fatalf("validateResponse: %v", err)
		}
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Error("compiled schema not cached")
	}
}
