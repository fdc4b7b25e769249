package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/abhisek/multiz/internal/session"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ImportError reports an answer log that cannot be imported.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import answers: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import answers: %s", e.Reason)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ExportFileName returns the default export file name for day.
func ExportFileName(day time.Time) string {
	return fmt.Sprintf("question-logs-%s.json", day.Format("2006-01-02"))
}

// ExportAnswers writes answers to w as an indented JSON array.
func ExportAnswers(w io.Writer, answers []session.Answer) error {
	if answers == nil {
		answers = []session.Answer{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	return nil
}

const answerLogSchemaURL = "schema://answer-log.json"

var answerLogSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"question", "value", "outcome", "startedAt", "finishedAt"},
		"properties": map[string]any{
			"id": map[string]any{"type": "string"},
			"question": map[string]any{
				"type":     "object",
				"required": []any{"firstFactor", "secondFactor", "product", "unknown"},
				"properties": map[string]any{
					"firstFactor":  map[string]any{"type": "integer"},
					"secondFactor": map[string]any{"type": "integer"},
					"product":      map[string]any{"type": "integer"},
					"unknown": map[string]any{
						"enum": []any{"first_factor", "second_factor", "product"},
					},
				},
			},
			"value":      map[string]any{"type": "integer"},
			"outcome":    map[string]any{"enum": []any{"correct", "incorrect"}},
			"startedAt":  map[string]any{"type": "string"},
			"finishedAt": map[string]any{"type": "string"},
			"sessionId":  map[string]any{"type": "string"},
			"ignored":    map[string]any{"type": "boolean"},
		},
	},
}

func compileAnswerLogSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(answerLogSchemaURL, answerLogSchema); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(answerLogSchemaURL)
}

// ImportAnswers reads an exported answer log. Malformed JSON, a payload
// that is not an array, or entries missing required fields yield an
// *ImportError. Entries without an id, or repeating one, get a fresh id.
// Entries without a session id are kept as ungrouped.
func ImportAnswers(r io.Reader) ([]session.Answer, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ImportError{Reason: "read input", Err: err}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ImportError{Reason: "invalid JSON", Err: err}
	}
	if _, ok := parsed.([]any); !ok {
		return nil, &ImportError{Reason: "expected a JSON array of answers"}
	}

	compiled, err := compileAnswerLogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile answer log schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, &ImportError{Reason: "schema validation failed", Err: ve}
		}
		return nil, &ImportError{Reason: "schema validation failed", Err: err}
	}

	var answers []session.Answer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, &ImportError{Reason: "decode answers", Err: err}
	}
	seen := make(map[string]bool, len(answers))
	for i := range answers {
		if answers[i].ID == "" || seen[answers[i].ID] {
			answers[i].ID = uuid.NewString()
		}
		seen[answers[i].ID] = true
	}
	return answers, nil
}
