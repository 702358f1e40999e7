package lessons

// LectureContent is one module's lecture and its closing quiz.
type LectureContent struct {
	LectureTitle string     `json:"lecture_title"`
	LectureText  string     `json:"lecture_text"`
	Quiz         []QuizItem `json:"quiz"`
}

// QuizItem is a multiple-choice question. Options carry their own letter
// prefix ("A. ...") and CorrectAnswer is the bare letter.
type QuizItem struct {
	QuestionNumber int      `json:"question_number"`
	QuestionText   string   `json:"question_text"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	Explanation    string   `json:"explanation"`
}

// LectureInput names the module to teach and the course it belongs to.
type LectureInput struct {
	ModuleTitle string
	CourseTopic string
}
