package grading

import "encoding/json"

// GradedAnswer is the model's verdict on a single question.
type GradedAnswer struct {
	QuestionNumber int    `json:"question_number"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation"`
}

// Grading is the decoded form of a grader reply. The HTTP surface relays
// the raw reply; this type exists for scoring.
type Grading struct {
	GradedResults   []GradedAnswer `json:"graded_results"`
	FeedbackSummary string         `json:"feedback_summary"`
}

// Submission is the grader input: the lecture with its quiz and the user's
// answers, both as the caller sent them.
type Submission struct {
	LectureAndQuiz json.RawMessage
	UserAnswers    json.RawMessage
}
