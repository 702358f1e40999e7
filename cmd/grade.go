package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/lecturely/internal/config"
	"github.com/abhisek/lecturely/internal/grading"
	"github.com/abhisek/lecturely/internal/logger"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade quiz answers against a lecture JSON file",
	Long: `Send a lecture (with its quiz) and a set of answers to the grader, print
the model's verdicts, then the score and whether it clears the 60% bar.`,
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().String("lecture", "", "Lecture JSON file, as printed by 'generate content' (required)")
	gradeCmd.Flags().String("answers", "", "Answers JSON file: object keyed by question number, or array in quiz order (required)")
	_ = gradeCmd.MarkFlagRequired("lecture")
	_ = gradeCmd.MarkFlagRequired("answers")
}

func runGrade(cmd *cobra.Command, args []string) error {
	lecturePath, _ := cmd.Flags().GetString("lecture")
	answersPath, _ := cmd.Flags().GetString("answers")

	var lecture, answers json.RawMessage
	if err := readJSONFile(lecturePath, &lecture); err != nil {
		return err
	}
	if err := readJSONFile(answersPath, &answers); err != nil {
		return err
	}

	_, log, svcs, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	raw, err := svcs.grader.Grade(cmd.Context(), grading.Submission{
		LectureAndQuiz: lecture,
		UserAnswers:    answers,
	})
	if err != nil {
		return err
	}

	return writeGrading(cmd.OutOrStdout(), raw, lecture)
}

// writeGrading prints the reply as indented JSON followed by the score line.
func writeGrading(w io.Writer, raw, lecture json.RawMessage) error {
	g, err := grading.Parse(raw)
	if err != nil {
		return err
	}
	if err := printJSON(w, raw); err != nil {
		return fmt.Errorf("write grading: %w", err)
	}
	if _, err := fmt.Fprintln(w, scoreLine(g, quizSize(lecture, g))); err != nil {
		return fmt.Errorf("write score: %w", err)
	}
	return nil
}

// quizSize counts questions in the lecture's quiz, falling back to the
// number of graded results when the file has no quiz array.
func quizSize(lecture json.RawMessage, g *grading.Grading) int {
	var l struct {
		Quiz []json.RawMessage `json:"quiz"`
	}
	if err := json.Unmarshal(lecture, &l); err == nil && len(l.Quiz) > 0 {
		return len(l.Quiz)
	}
	return len(g.GradedResults)
}

func scoreLine(g *grading.Grading, questions int) string {
	correct := grading.Score(g)
	pct := 0
	if questions > 0 {
		pct = (correct*100 + questions/2) / questions
	}
	verdict := "Keep practicing!"
	if grading.Passed(g, questions) {
		verdict = "Passed!"
	}
	return fmt.Sprintf("Score: %d/%d (%d%%) %s", correct, questions, pct, verdict)
}

// setup is the shared prologue of the one-shot commands.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, *services, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	svcs, err := buildServices(cmd.Context(), cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, svcs, nil
}
