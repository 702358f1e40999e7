package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/lecturely/internal/config"
	"github.com/abhisek/lecturely/internal/curriculum"
	"github.com/abhisek/lecturely/internal/grading"
	"github.com/abhisek/lecturely/internal/images"
	"github.com/abhisek/lecturely/internal/lessons"
	"github.com/abhisek/lecturely/internal/llm"
	"github.com/abhisek/lecturely/internal/logger"
	"github.com/abhisek/lecturely/internal/slides"
	"github.com/abhisek/lecturely/internal/speech"
)

// services is the dependency graph shared by serve, generate and grade.
type services struct {
	provider llm.Provider
	modules  *curriculum.Service
	lectures *lessons.Service
	slides   *slides.Service
	grader   *grading.Service
	speech   *speech.FishClient
}

func buildServices(ctx context.Context, cfg *config.Config, log *logger.Logger) (*services, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	pexels := images.NewPexelsClient(cfg.Pexels)
	if cfg.Pexels.APIKey == "" {
		log.Warn("PEXELS_API_KEY not set; slides will have no images")
	}

	fish := speech.NewFishClient(cfg.Fish)
	if !fish.Configured() {
		log.Warn("FISH_API_KEY not set; text-to-speech is disabled")
	}

	return &services{
		provider: provider,
		modules:  curriculum.NewService(provider, curriculum.DefaultConfig()),
		lectures: lessons.NewService(provider, lessons.DefaultConfig()),
		slides:   slides.NewService(provider, pexels, slides.DefaultConfig(), log),
		grader:   grading.NewService(provider, grading.DefaultConfig()),
		speech:   fish,
	}, nil
}
