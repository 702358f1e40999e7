package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lecturely/internal/lessons"
	"github.com/abhisek/lecturely/internal/slides"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate course material from the command line (no server)",
	Long: `Run a single generator and print its JSON result.

This is a stateless developer tool, useful for evaluating prompt quality
against a real provider without a browser.`,
}

var generateModulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Generate a module outline for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		_, log, svcs, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		out, err := svcs.modules.Generate(cmd.Context(), topic)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

var generateContentCmd = &cobra.Command{
	Use:   "content",
	Short: "Generate the lecture and quiz for one module",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetString("module")
		topic, _ := cmd.Flags().GetString("topic")

		_, log, svcs, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		out, err := svcs.lectures.Generate(cmd.Context(), lessons.LectureInput{
			ModuleTitle: module,
			CourseTopic: topic,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

var generateSlidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Generate slides from a lecture JSON file (as printed by 'generate content')",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("lecture")
		topic, _ := cmd.Flags().GetString("topic")

		var lecture lessons.LectureContent
		if err := readJSONFile(path, &lecture); err != nil {
			return err
		}

		_, log, svcs, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		out, err := svcs.slides.Generate(cmd.Context(), slides.DeckInput{
			LectureTitle: lecture.LectureTitle,
			LectureText:  lecture.LectureText,
			CourseTopic:  topic,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	generateModulesCmd.Flags().String("topic", "", "Course topic (required)")
	_ = generateModulesCmd.MarkFlagRequired("topic")

	generateContentCmd.Flags().String("module", "", "Module title (required)")
	generateContentCmd.Flags().String("topic", "", "Course topic (required)")
	_ = generateContentCmd.MarkFlagRequired("module")
	_ = generateContentCmd.MarkFlagRequired("topic")

	generateSlidesCmd.Flags().String("lecture", "", "Lecture JSON file, '-' for stdin (required)")
	generateSlidesCmd.Flags().String("topic", "", "Course topic")
	_ = generateSlidesCmd.MarkFlagRequired("lecture")

	generateCmd.AddCommand(generateModulesCmd)
	generateCmd.AddCommand(generateContentCmd)
	generateCmd.AddCommand(generateSlidesCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readJSONFile decodes path into v. "-" reads stdin.
func readJSONFile(path string, v any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
