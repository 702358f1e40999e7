// Package config assembles the process configuration once at startup.
// Sources, lowest to highest priority: defaults, a YAML file, a .env file,
// the process environment. Command-line flags are applied by cmd on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/lecturely/internal/images"
	"github.com/abhisek/lecturely/internal/llm"
	"github.com/abhisek/lecturely/internal/speech"
)

// Config is the full service configuration.
type Config struct {
	Addr        string   `yaml:"addr"`
	LogMode     string   `yaml:"log_mode"` // "dev" or "prod"
	Tracing     string   `yaml:"tracing"`  // "off" or "stdout"
	CORSOrigins []string `yaml:"cors_origins"`

	LLM    llm.Config          `yaml:"llm"`
	Pexels images.PexelsConfig `yaml:"pexels"`
	Fish   speech.FishConfig   `yaml:"fish"`
}

// LoadOptions says where to look for file-based configuration. Empty paths
// are skipped; a missing .env file is not an error.
type LoadOptions struct {
	ConfigPath string
	EnvFile    string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:        ":8080",
		LogMode:     "dev",
		Tracing:     "off",
		CORSOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		LLM:         llm.DefaultConfig(),
		Pexels:      images.PexelsConfig{BaseURL: images.DefaultPexelsBaseURL},
		Fish:        speech.FishConfig{BaseURL: speech.DefaultFishBaseURL, VoiceID: speech.DefaultFishVoice},
	}
}

// Load builds a Config from all sources. It does not validate.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.ConfigPath != "" {
		data, err := os.ReadFile(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", opts.ConfigPath, err)
		}
	}

	// godotenv never overrides variables already in the environment.
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("LECTURELY_ADDR", &c.Addr)
	str("LECTURELY_LOG_MODE", &c.LogMode)
	str("LECTURELY_TRACING", &c.Tracing)
	if v, ok := lookup("LECTURELY_CORS_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		c.CORSOrigins = splitList(v)
	}

	str("LECTURELY_LLM_PROVIDER", &c.LLM.Provider)
	str("GROQ_API_KEY", &c.LLM.Groq.APIKey)
	str("LECTURELY_GROQ_MODEL", &c.LLM.Groq.Model)
	str("OPENAI_API_KEY", &c.LLM.OpenAI.APIKey)
	str("LECTURELY_OPENAI_MODEL", &c.LLM.OpenAI.Model)
	str("ANTHROPIC_API_KEY", &c.LLM.Anthropic.APIKey)
	str("LECTURELY_ANTHROPIC_MODEL", &c.LLM.Anthropic.Model)
	str("GEMINI_API_KEY", &c.LLM.Gemini.APIKey)
	str("LECTURELY_GEMINI_MODEL", &c.LLM.Gemini.Model)
	str("OPENROUTER_API_KEY", &c.LLM.OpenRouter.APIKey)
	str("LECTURELY_OPENROUTER_MODEL", &c.LLM.OpenRouter.Model)

	if v, ok := lookup("LECTURELY_MAX_ATTEMPTS"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("LECTURELY_MAX_ATTEMPTS: %w", err)
		}
		c.LLM.Retry.MaxAttempts = n
	}

	str("PEXELS_API_KEY", &c.Pexels.APIKey)
	str("FISH_API_KEY", &c.Fish.APIKey)
	return nil
}

// Validate fails fast on settings the server cannot start with. Missing
// Pexels or Fish keys are allowed: slides degrade to no images and
// text-to-speech answers with an error.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address is required")
	}
	switch c.Tracing {
	case "", "off", "stdout":
	default:
		return fmt.Errorf("unknown tracing mode %q (want off or stdout)", c.Tracing)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
