package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lecturely/internal/grading"
)

func TestQuizSize(t *testing.T) {
	g := &grading.Grading{GradedResults: make([]grading.GradedAnswer, 3)}

	assert.Equal(t, 5, quizSize(json.RawMessage(`{"quiz":[{},{},{},{},{}]}`), g))
	assert.Equal(t, 3, quizSize(json.RawMessage(`{"lecture_title":"Cells"}`), g), "falls back to graded results")
	assert.Equal(t, 3, quizSize(json.RawMessage(`"not an object"`), g))
}

func TestScoreLine(t *testing.T) {
	results := []grading.GradedAnswer{
		{QuestionNumber: 1, IsCorrect: true},
		{QuestionNumber: 2, IsCorrect: true},
		{QuestionNumber: 3, IsCorrect: true},
		{QuestionNumber: 4, IsCorrect: false},
		{QuestionNumber: 5, IsCorrect: false},
	}
	g := &grading.Grading{GradedResults: results}
	assert.Equal(t, "Score: 3/5 (60%) Passed!", scoreLine(g, 5))

	g.GradedResults[2].IsCorrect = false
	assert.Equal(t, "Score: 2/5 (40%) Keep practicing!", scoreLine(g, 5))
}

const gradingReply = `{"graded_results":[{"question_number":1,"is_correct":true},{"question_number":2,"is_correct":false}],"feedback_summary":"ok"}`

func TestWriteGrading(t *testing.T) {
	var buf bytes.Buffer
	err := writeGrading(&buf, json.RawMessage(gradingReply), json.RawMessage(`{"quiz":[{},{}]}`))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "\"feedback_summary\": \"ok\"")
	assert.Contains(t, out, "Score: 1/2 (50%) Keep practicing!")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteGrading_ReturnsWriteError(t *testing.T) {
	err := writeGrading(failingWriter{}, json.RawMessage(gradingReply), json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
