// Package lessons writes the lecture text and closing quiz for a single
// course module.
package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/lecturely/internal/llm"
)

// ErrInvalidInput is returned when the module title or course topic is
// missing. No model call is made in that case.
var ErrInvalidInput = errors.New("module title and course topic are required")

// Service generates lectures.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lecture generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate writes the lecture and quiz for input.ModuleTitle within
// input.CourseTopic.
func (s *Service) Generate(ctx context.Context, input LectureInput) (*LectureContent, error) {
	if strings.TrimSpace(input.ModuleTitle) == "" || strings.TrimSpace(input.CourseTopic) == "" {
		return nil, ErrInvalidInput
	}
	ctx = llm.WithPurpose(ctx, "lecture")

	req := llm.Request{
		Messages:    llm.UserPrompt(buildLecturePrompt(input)),
		Schema:      LectureSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Check:       checkQuiz,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lecture generation: %w", err)
	}

	var out LectureContent
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lecture response: %w", err)
	}
	return &out, nil
}

// checkQuiz verifies every question's option labels are distinct and that
// the correct answer names one of them.
func checkQuiz(raw json.RawMessage) error {
	var content LectureContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return err
	}
	for i, q := range content.Quiz {
		if err := checkQuizItem(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func checkQuizItem(q QuizItem) error {
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("has %d options, want %d", len(q.Options), OptionsPerQuestion)
	}
	labels := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		label := OptionLabel(opt)
		if label == "" {
			return fmt.Errorf("option %q has no letter label", opt)
		}
		if labels[label] {
			return fmt.Errorf("duplicate option label %q", label)
		}
		labels[label] = true
	}
	if !labels[q.CorrectAnswer] {
		return fmt.Errorf("correct answer %q is not among the option labels", q.CorrectAnswer)
	}
	return nil
}

// OptionLabel returns the letter prefix of an option such as "B. Mitosis",
// or "" when the option is not labeled A-D.
func OptionLabel(option string) string {
	option = strings.TrimSpace(option)
	if len(option) < 2 || option[1] != '.' {
		return ""
	}
	if option[0] < 'A' || option[0] > 'D' {
		return ""
	}
	return option[:1]
}
