// Package slides condenses a lecture into a slide deck and decorates each
// slide with a stock photo.
package slides

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/lecturely/internal/images"
	"github.com/abhisek/lecturely/internal/llm"
	"github.com/abhisek/lecturely/internal/logger"
)

// ErrInvalidInput is returned when the lecture title or text is missing.
var ErrInvalidInput = errors.New("lecture title and text are required")

// Service generates slide decks.
type Service struct {
	provider llm.Provider
	searcher images.Searcher
	cfg      Config
	log      *logger.Logger
}

// NewService creates a slide generator. searcher may be nil, in which case
// every slide comes back without images.
func NewService(provider llm.Provider, searcher images.Searcher, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, searcher: searcher, cfg: cfg, log: log}
}

// Generate produces the slide outline, then looks up one photo per slide.
// Photo lookups never fail the deck.
func (s *Service) Generate(ctx context.Context, input DeckInput) (*Deck, error) {
	if strings.TrimSpace(input.LectureTitle) == "" || strings.TrimSpace(input.LectureText) == "" {
		return nil, ErrInvalidInput
	}

	outline, err := s.outline(llm.WithPurpose(ctx, "slides"), input)
	if err != nil {
		return nil, err
	}

	s.attachImages(ctx, outline)
	return &Deck{Slides: outline}, nil
}

func (s *Service) outline(ctx context.Context, input DeckInput) ([]Slide, error) {
	req := llm.Request{
		Messages:       llm.UserPrompt(buildSlidesPrompt(input, s.cfg.ExcerptChars)),
		Schema:         OutlineSchema,
		MaxTokens:      s.cfg.MaxTokens,
		Temperature:    s.cfg.Temperature,
		StripCodeFence: true,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("slide generation: %w", err)
	}

	var out Deck
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse slides response: %w", err)
	}
	return out.Slides, nil
}

// attachImages runs one lookup per slide, all at once. Each goroutine owns
// exactly one slot of slides, so no locking is needed and order is kept.
// lookup absorbs its own failures, so Wait only joins. The group has no
// shared context: one failed lookup must not cancel the rest.
func (s *Service) attachImages(ctx context.Context, slides []Slide) {
	var g errgroup.Group
	for i := range slides {
		g.Go(func() error {
			slides[i].Images = s.lookup(ctx, slides[i])
			return nil
		})
	}
	_ = g.Wait() // always nil
}

func (s *Service) lookup(ctx context.Context, slide Slide) []images.Image {
	none := []images.Image{}
	if s.searcher == nil {
		return none
	}

	found, err := s.searcher.Search(ctx, slide.SearchQuery, s.cfg.ImagesPerQuery, s.cfg.Orientation)
	if err != nil {
		s.log.Warn("slide image lookup failed",
			"slide_number", slide.SlideNumber,
			"search_query", slide.SearchQuery,
			"error", err,
		)
		return none
	}
	if len(found) == 0 {
		return none
	}
	return found[:1]
}
