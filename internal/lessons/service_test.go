package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lecturely/internal/llm"
)

const validLectureJSON = `{
	"lecture_title": "The Light Reactions",
	"lecture_text": "Plants capture light.\n\nThe thylakoid membrane hosts photosystems.",
	"quiz": [
		{
			"question_number": 1,
			"question_text": "Where do the light reactions occur?",
			"options": ["A. Stroma", "B. Thylakoid membrane", "C. Nucleus", "D. Cell wall"],
			"correct_answer": "B",
			"explanation": "Photosystems sit in the thylakoid membrane."
		},
		{
			"question_number": 2,
			"question_text": "What gas is released?",
			"options": ["A. Oxygen", "B. Nitrogen", "C. Carbon dioxide", "D. Hydrogen"],
			"correct_answer": "A",
			"explanation": "Water splitting releases oxygen."
		}
	]
}`

func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	chain := llm.Chain(mock, llm.RetryConfig{MaxAttempts: llm.DefaultMaxAttempts}, nil)
	return NewService(chain, DefaultConfig()), mock
}

func testInput() LectureInput {
	return LectureInput{ModuleTitle: "The Light Reactions", CourseTopic: "Photosynthesis"}
}

func TestService_GeneratesLecture(t *testing.T) {
	svc, mock := newTestService(llm.Text(validLectureJSON))

	lecture, err := svc.Generate(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, "The Light Reactions", lecture.LectureTitle)
	assert.Contains(t, lecture.LectureText, "\n\n")
	require.Len(t, lecture.Quiz, 2)
	assert.Equal(t, "B", lecture.Quiz[0].CorrectAnswer)
	assert.Len(t, lecture.Quiz[0].Options, OptionsPerQuestion)
	assert.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	assert.Equal(t, 6000, req.MaxTokens)
	assert.Equal(t, 0.6, req.Temperature)
	assert.Equal(t, "lecture-content", req.Schema.Name)

	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, `Module Topic: "The Light Reactions"`)
	assert.Contains(t, prompt, `Main Course Topic: "Photosynthesis"`)
	assert.Contains(t, prompt, "800-1200 words")
}

func TestService_InvalidInput(t *testing.T) {
	tests := []LectureInput{
		{},
		{ModuleTitle: "Light"},
		{CourseTopic: "Photosynthesis"},
		{ModuleTitle: " ", CourseTopic: "Photosynthesis"},
	}
	for _, in := range tests {
		svc, mock := newTestService(llm.Text(validLectureJSON))
		_, err := svc.Generate(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, mock.CallCount())
	}
}

func TestService_MismatchedAnswerRetried(t *testing.T) {
	bad := strings.Replace(validLectureJSON, `"correct_answer": "B"`, `"correct_answer": "E"`, 1)
	svc, mock := newTestService(llm.Text(bad), llm.Text(validLectureJSON))

	lecture, err := svc.Generate(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, "B", lecture.Quiz[0].CorrectAnswer)
	assert.Equal(t, 2, mock.CallCount())
}

func TestService_ExhaustsAfterFiveAttempts(t *testing.T) {
	svc, mock := newTestService(llm.Text(`{"lecture_title": "cut off mid`))
	mock.Repeat = true

	_, err := svc.Generate(context.Background(), testInput())
	var exhausted *llm.ErrAttemptsExhausted
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, 5, mock.CallCount())
}

func TestCheckQuizItem(t *testing.T) {
	good := QuizItem{
		Options:       []string{"A. one", "B. two", "C. three", "D. four"},
		CorrectAnswer: "C",
	}
	tests := []struct {
		name    string
		mutate  func(q *QuizItem)
		wantErr bool
	}{
		{"valid", func(q *QuizItem) {}, false},
		{"three options", func(q *QuizItem) { q.Options = q.Options[:3] }, true},
		{"duplicate label", func(q *QuizItem) { q.Options[3] = "A. again" }, true},
		{"unlabeled option", func(q *QuizItem) { q.Options[2] = "three" }, true},
		{"answer not among labels", func(q *QuizItem) { q.CorrectAnswer = "E" }, true},
		{"answer with text", func(q *QuizItem) { q.CorrectAnswer = "C. three" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := good
			q.Options = append([]string(nil), good.Options...)
			tt.mutate(&q)
			err := checkQuizItem(q)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckQuiz_ReportsQuestionNumber(t *testing.T) {
	bad := strings.Replace(validLectureJSON, `"correct_answer": "A"`, `"correct_answer": "Z"`, 1)
	err := checkQuiz(json.RawMessage(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 2")
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", OptionLabel("A. Stroma"))
	assert.Equal(t, "D", OptionLabel("  D. Cell wall"))
	assert.Equal(t, "", OptionLabel("E. Extra"))
	assert.Equal(t, "", OptionLabel("A) Stroma"))
	assert.Equal(t, "", OptionLabel(""))
}
