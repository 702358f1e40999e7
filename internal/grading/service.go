// Package grading asks the model to mark a user's quiz answers against the
// lecture they came from.
package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/lecturely/internal/llm"
)

// ErrInvalidInput is returned when the lecture is not a JSON object or the
// answers are neither an object nor an array.
var ErrInvalidInput = errors.New("lecture/quiz data and user answers are required")

// Service grades quizzes.
type Service struct {
	provider llm.Provider
	cfg      Config
}

func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Grade returns the model's grading reply exactly as validated. Verdicts are
// not recomputed; the model's is_correct is authoritative.
func (s *Service) Grade(ctx context.Context, sub Submission) (json.RawMessage, error) {
	if !isObject(sub.LectureAndQuiz) || !(isObject(sub.UserAnswers) || isArray(sub.UserAnswers)) {
		return nil, ErrInvalidInput
	}

	prompt, err := buildGradingPrompt(sub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ctx = llm.WithPurpose(ctx, "grade")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    llm.UserPrompt(prompt),
		Schema:      GradingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("grade quiz: %w", err)
	}
	return resp.Content, nil
}

// Answers may be keyed by question number or listed in quiz order, so
// arrays are accepted there. Scalars, strings and null never are.
func isObject(raw json.RawMessage) bool {
	return jsonKind(raw) == '{'
}

func isArray(raw json.RawMessage) bool {
	return jsonKind(raw) == '['
}

// jsonKind returns the opening byte of a well-formed JSON value, or 0.
func jsonKind(raw json.RawMessage) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return 0
	}
	return raw[0]
}

// Parse decodes a grading reply for scoring.
func Parse(raw json.RawMessage) (*Grading, error) {
	var g Grading
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("parse grading: %w", err)
	}
	return &g, nil
}

// Score counts the answers marked correct.
func Score(g *Grading) int {
	n := 0
	for _, r := range g.GradedResults {
		if r.IsCorrect {
			n++
		}
	}
	return n
}

// PassingScore is the number of correct answers needed out of questions:
// 60%, rounded up.
func PassingScore(questions int) int {
	return (questions*3 + 4) / 5
}

// Passed reports whether g clears the 60% bar for a quiz of the given size.
func Passed(g *Grading, questions int) bool {
	return Score(g) >= PassingScore(questions)
}
