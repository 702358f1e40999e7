package grading

import (
	"bytes"
	"encoding/json"
	"strings"
)

func buildGradingPrompt(sub Submission) (string, error) {
	quiz, err := indentJSON(sub.LectureAndQuiz)
	if err != nil {
		return "", err
	}
	answers, err := indentJSON(sub.UserAnswers)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a precise and encouraging quiz grader.\n\n")
	b.WriteString("Below is quiz data and the user's answers in JSON format.\n\n")
	b.WriteString("Lecture and quiz content:\n")
	b.WriteString(quiz)
	b.WriteString("\n\nUser's Answers:\n")
	b.WriteString(answers)
	b.WriteString(`

Instructions:
- Compare each user answer to the correct answer.
- Mark each question as "correct" or "incorrect".
- Give a short explanation for each, referencing the relevant concept from the lecture.
- If any are wrong, recommend which section of the lecture to review.

The output must follow the following JSON format. The output MUST be valid JSON (use escape characters like '\n' for newlines between paragraphs, etc). You should not include any extraneous text or symbols. Example output format:
{
	"graded_results": [
		{
			"question_number": 1,
			"user_answer": "A",
			"correct_answer": "B",
			"is_correct": false,
			"explanation": "The correct answer is B because..."
		},
		...
	],
	"feedback_summary": "You did well overall! Review Newton's Second Law for more clarity."
}`)

	return b.String(), nil
}

func indentJSON(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
