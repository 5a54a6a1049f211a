package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var narrativeSchema = &Schema{
	Name: "test-narrative",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":   map[string]any{"type": "string"},
			"summary": map[string]any{"type": "string"},
			"traits": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "summary"},
	},
}

func TestValidateResponseAcceptsConformingJSON(t *testing.T) {
	raw := json.RawMessage(`{"title":"INTJ","summary":"ok","traits":["calm"]}`)
	if err := validateResponse(narrativeSchema, raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"INTJ"}`)
	err := validateResponse(narrativeSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(narrativeSchema, json.RawMessage(`not json`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Errorf("validateResponse(nil) = %v", err)
	}
}
