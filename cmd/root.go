package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lecturely/internal/config"
	"github.com/abhisek/lecturely/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lecturely",
	Short: "Course generation backend",
	Long: `Lecturely turns a topic into a course: a module outline, lectures with
quizzes, slide decks with stock photos, and quiz grading, all generated by a
hosted language model.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file (missing file is ignored)")
	rootCmd.PersistentFlags().String("provider", "", "LLM provider override: groq, openai, openrouter, anthropic, gemini, mock")
	rootCmd.PersistentFlags().String("log-mode", "", "Log mode override: dev or prod")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration with flags applied last, validates it
// and builds the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.LoadOptions{ConfigPath: configPath, EnvFile: envFile})
	if err != nil {
		return nil, nil, err
	}

	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.LLM.Provider = p
	}
	if m, _ := cmd.Flags().GetString("log-mode"); m != "" {
		cfg.LogMode = m
	}
	if cmd.Flags().Lookup("addr") != nil {
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			cfg.Addr = a
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
