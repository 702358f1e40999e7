// Package curriculum breaks a topic down into an ordered list of course
// modules.
package curriculum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/lecturely/internal/llm"
)

// ErrInvalidInput is returned when the topic is missing. No model call is
// made in that case.
var ErrInvalidInput = errors.New("topic is required and must be a string")

// Service generates course outlines.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a module-list generator. The provider is expected to
// carry the retry and validation chain (see llm.Chain).
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate asks the model for 5-10 modules covering topic.
func (s *Service) Generate(ctx context.Context, topic string) (*Outline, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrInvalidInput
	}
	ctx = llm.WithPurpose(ctx, "modules")

	req := llm.Request{
		Messages:    llm.UserPrompt(buildModulesPrompt(topic)),
		Schema:      ModuleListSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Check:       checkModules,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate modules: %w", err)
	}

	var modules []ModuleStub
	if err := json.Unmarshal(resp.Content, &modules); err != nil {
		return nil, fmt.Errorf("parse modules response: %w", err)
	}

	return &Outline{Modules: modules, Topic: topic}, nil
}

// checkModules enforces what the schema cannot: numbering runs 1..n in
// order and every title has visible text.
func checkModules(raw json.RawMessage) error {
	var modules []ModuleStub
	if err := json.Unmarshal(raw, &modules); err != nil {
		return err
	}
	if len(modules) < MinModules || len(modules) > MaxModules {
		return fmt.Errorf("got %d modules, want %d-%d", len(modules), MinModules, MaxModules)
	}
	for i, m := range modules {
		if m.ModuleNumber != i+1 {
			return fmt.Errorf("module at position %d is numbered %d", i+1, m.ModuleNumber)
		}
		if strings.TrimSpace(m.ModuleTitle) == "" {
			return fmt.Errorf("module %d has an empty title", m.ModuleNumber)
		}
	}
	return nil
}
