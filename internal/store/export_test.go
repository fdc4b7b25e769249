package store

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/multiz/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorsIsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func TestExportImport(t *testing.T) {
	in := []session.Answer{
		sampleAnswer("a1", 3, 4, true),
		sampleAnswer("a2", 7, 8, false),
	}
	in[1].IgnoredForStats = true

	var buf bytes.Buffer
	require.NoError(t, ExportAnswers(&buf, in))
	assert.Contains(t, buf.String(), "\n  {", "export should be indented")

	out, err := ImportAnswers(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Question, out[i].Question)
		assert.Equal(t, in[i].Outcome, out[i].Outcome)
		assert.Equal(t, in[i].IgnoredForStats, out[i].IgnoredForStats)
		assert.True(t, in[i].FinishedAt.Equal(out[i].FinishedAt))
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportAnswers(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestImport_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `[{"question":`},
		{"object", `{"answers": []}`},
		{"number", `42`},
		{"missing question", `[{"value": 1, "outcome": "correct", "startedAt": "2026-01-01T00:00:00Z", "finishedAt": "2026-01-01T00:00:01Z"}]`},
		{"bad outcome", `[{"question": {"firstFactor": 2, "secondFactor": 3, "product": 6, "unknown": "product"}, "value": 6, "outcome": "maybe", "startedAt": "2026-01-01T00:00:00Z", "finishedAt": "2026-01-01T00:00:01Z"}]`},
		{"bad time", `[{"question": {"firstFactor": 2, "secondFactor": 3, "product": 6, "unknown": "product"}, "value": 6, "outcome": "correct", "startedAt": "yesterday", "finishedAt": "2026-01-01T00:00:01Z"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportAnswers(strings.NewReader(tt.input))
			var ie *ImportError
			assert.True(t, errors.As(err, &ie), "err = %v", err)
		})
	}
}

func TestImport_AcceptsUngroupedAndAssignsIDs(t *testing.T) {
	input := `[
		{"question": {"firstFactor": 2, "secondFactor": 3, "product": 6, "unknown": "product"}, "value": 6, "outcome": "correct", "startedAt": "2026-01-01T00:00:00Z", "finishedAt": "2026-01-01T00:00:02Z"},
		{"id": "dup", "question": {"firstFactor": 4, "secondFactor": 3, "product": 12, "unknown": "first_factor"}, "value": 5, "outcome": "incorrect", "startedAt": "2026-01-01T00:00:00Z", "finishedAt": "2026-01-01T00:00:02Z", "sessionId": "s"},
		{"id": "dup", "question": {"firstFactor": 4, "secondFactor": 3, "product": 12, "unknown": "first_factor"}, "value": 4, "outcome": "correct", "startedAt": "2026-01-01T00:00:00Z", "finishedAt": "2026-01-01T00:00:02Z", "sessionId": "s"}
	]`
	out, err := ImportAnswers(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.NotEmpty(t, out[0].ID)
	assert.Empty(t, out[0].SessionID)
	assert.Equal(t, "dup", out[1].ID)
	assert.NotEqual(t, "dup", out[2].ID)
	assert.Equal(t, 2*time.Second, out[0].Elapsed())
}

func TestExportFileName(t *testing.T) {
	day := time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, "question-logs-2026-10-16.json", ExportFileName(day))
}
