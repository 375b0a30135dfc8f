package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func quizTestSchema() *Schema {
	return &Schema{
		Name:        "test-quiz",
		Description: "Knowledge check questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":     map[string]any{"type": "string"},
							"options":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
							"correctIndex": map[string]any{"type": "integer", "minimum": 0},
							"explanation":  map[string]any{"type": "string"},
							"difficulty":   map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
						},
						"required": []any{"question", "options", "correctIndex"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid",
			raw:  `{"questions":[{"question":"Gradient of water?","options":["0.433","0.052"],"correctIndex":0,"difficulty":"easy"}]}`,
		},
		{
			name: "valid without optional fields",
			raw:  `{"questions":[{"question":"q","options":["a","b"],"correctIndex":1}]}`,
		},
		{
			name:    "missing required field",
			raw:     `{"questions":[{"question":"q","options":["a","b"]}]}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			raw:     `{"questions":[{"question":"q","options":["a","b"],"correctIndex":"zero"}]}`,
			wantErr: true,
		},
		{
			name:    "invalid enum",
			raw:     `{"questions":[{"question":"q","options":["a","b"],"correctIndex":0,"difficulty":"medium"}]}`,
			wantErr: true,
		},
		{
			name:    "too few options",
			raw:     `{"questions":[{"question":"q","options":["a"],"correctIndex":0}]}`,
			wantErr: true,
		},
		{
			name:    "empty question list",
			raw:     `{"questions":[]}`,
			wantErr: true,
		},
		{
			name:    "negative index",
			raw:     `{"questions":[{"question":"q","options":["a","b"],"correctIndex":-1}]}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(quizTestSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_ReusesCompiledSchema(t *testing.T) {
	s := quizTestSchema()
	first, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Fatal("expected cached schema to be reused")
	}
}

func TestValidateResponse_NamesSchema(t *testing.T) {
	err := validateResponse(quizTestSchema(), json.RawMessage(`{"questions":[]}`))
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
	if invErr.Schema != "test-quiz" {
		t.Errorf("Schema = %q, want test-quiz", invErr.Schema)
	}
	if !strings.Contains(err.Error(), "test-quiz") {
		t.Errorf("error %q should name the schema", err.Error())
	}
	if string(invErr.Content) != `{"questions":[]}` {
		t.Errorf("Content = %s, want the rejected payload", invErr.Content)
	}
}
