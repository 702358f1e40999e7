package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/lecturely/internal/curriculum"
	"github.com/abhisek/lecturely/internal/grading"
	"github.com/abhisek/lecturely/internal/lessons"
	"github.com/abhisek/lecturely/internal/logger"
	"github.com/abhisek/lecturely/internal/slides"
	"github.com/abhisek/lecturely/internal/speech"
)

// Fixed client-facing messages. Causes are logged, never returned.
const (
	msgModulesInput  = "Topic is required and must be a string"
	msgModulesFailed = "Failed to generate modules"
	msgModulesDetail = "Timed out while generating modules."

	msgContentInput  = "Module title and course topic are required"
	msgContentFailed = "Failed to generate content"
	msgContentDetail = "Timed out while generating lecture content."

	msgSlidesInput  = "Lecture title and text are required"
	msgSlidesFailed = "Failed to generate slides"
	msgSlidesDetail = "Timed out while generating slides."

	msgGradeInput  = "Lecture/quiz data and user answers are required"
	msgGradeFailed = "Failed to grade quiz"
	msgGradeDetail = "Timed out while grading quiz."

	msgSpeechInput         = "Text is required"
	msgSpeechNotConfigured = "Fish API key not configured"
	msgSpeechFailed        = "Failed to synthesize speech"
)

// Handlers serves the course endpoints.
type Handlers struct {
	modules  *curriculum.Service
	lectures *lessons.Service
	slides   *slides.Service
	grader   *grading.Service
	speech   speech.Synthesizer
	log      *logger.Logger
}

type generateModulesRequest struct {
	Topic string `json:"topic"`
}

func (h *Handlers) GenerateModules(c *gin.Context) {
	var req generateModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgModulesInput, "")
		return
	}

	out, err := h.modules.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		h.fail(c, err, curriculum.ErrInvalidInput, msgModulesInput, msgModulesFailed, msgModulesDetail)
		return
	}
	c.JSON(http.StatusOK, out)
}

type generateContentRequest struct {
	ModuleTitle string `json:"moduleTitle"`
	CourseTopic string `json:"courseTopic"`
}

func (h *Handlers) GenerateContent(c *gin.Context) {
	var req generateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgContentInput, "")
		return
	}

	out, err := h.lectures.Generate(c.Request.Context(), lessons.LectureInput{
		ModuleTitle: req.ModuleTitle,
		CourseTopic: req.CourseTopic,
	})
	if err != nil {
		h.fail(c, err, lessons.ErrInvalidInput, msgContentInput, msgContentFailed, msgContentDetail)
		return
	}
	c.JSON(http.StatusOK, out)
}

type generateSlidesRequest struct {
	LectureTitle string `json:"lectureTitle"`
	LectureText  string `json:"lectureText"`
	CourseTopic  string `json:"courseTopic"`
}

func (h *Handlers) GenerateSlides(c *gin.Context) {
	var req generateSlidesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgSlidesInput, "")
		return
	}

	out, err := h.slides.Generate(c.Request.Context(), slides.DeckInput{
		LectureTitle: req.LectureTitle,
		LectureText:  req.LectureText,
		CourseTopic:  req.CourseTopic,
	})
	if err != nil {
		h.fail(c, err, slides.ErrInvalidInput, msgSlidesInput, msgSlidesFailed, msgSlidesDetail)
		return
	}
	c.JSON(http.StatusOK, out)
}

type gradeQuizRequest struct {
	LectureAndQuiz json.RawMessage `json:"lectureAndQuiz"`
	UserAnswers    json.RawMessage `json:"userAnswers"`
}

func (h *Handlers) GradeQuiz(c *gin.Context) {
	var req gradeQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgGradeInput, "")
		return
	}

	raw, err := h.grader.Grade(c.Request.Context(), grading.Submission{
		LectureAndQuiz: req.LectureAndQuiz,
		UserAnswers:    req.UserAnswers,
	})
	if err != nil {
		h.fail(c, err, grading.ErrInvalidInput, msgGradeInput, msgGradeFailed, msgGradeDetail)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

type textToSpeechRequest struct {
	Text string `json:"text"`
}

func (h *Handlers) TextToSpeech(c *gin.Context) {
	var req textToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		respondError(c, http.StatusBadRequest, msgSpeechInput, "")
		return
	}
	if h.speech == nil {
		respondError(c, http.StatusInternalServerError, msgSpeechNotConfigured, "")
		return
	}

	audio, contentType, err := h.speech.Synthesize(c.Request.Context(), req.Text)
	switch {
	case errors.Is(err, speech.ErrNotConfigured):
		respondError(c, http.StatusInternalServerError, msgSpeechNotConfigured, "")
		return
	case err != nil:
		h.log.Error("text-to-speech failed", "error", err)
		respondError(c, http.StatusBadGateway, msgSpeechFailed, "")
		return
	}
	c.Data(http.StatusOK, contentType, audio)
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// fail maps a service error to the endpoint's fixed envelope.
func (h *Handlers) fail(c *gin.Context, err, invalid error, inputMsg, failMsg, detail string) {
	if errors.Is(err, invalid) {
		respondError(c, http.StatusBadRequest, inputMsg, "")
		return
	}
	h.log.Error(failMsg, "path", c.FullPath(), "request_id", RequestIDFrom(c.Request.Context()), "error", err)
	respondError(c, http.StatusInternalServerError, failMsg, detail)
}
