package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/abhisek/lecturely/internal/curriculum"
	"github.com/abhisek/lecturely/internal/grading"
	"github.com/abhisek/lecturely/internal/lessons"
	"github.com/abhisek/lecturely/internal/logger"
	"github.com/abhisek/lecturely/internal/slides"
	"github.com/abhisek/lecturely/internal/speech"
)

// RouterConfig carries everything the router needs. Services are required;
// Speech may be nil, in which case text-to-speech reports it is not
// configured.
type RouterConfig struct {
	Modules  *curriculum.Service
	Lectures *lessons.Service
	Slides   *slides.Service
	Grader   *grading.Service
	Speech   speech.Synthesizer

	Log         *logger.Logger
	CORSOrigins []string

	// TraceService enables otelgin spans under this service name when set.
	TraceService string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TraceService != "" {
		r.Use(otelgin.Middleware(cfg.TraceService))
	}
	r.Use(AttachRequestID())
	r.Use(RequestLogger(log))
	r.Use(CORS(cfg.CORSOrigins))

	h := &Handlers{
		modules:  cfg.Modules,
		lectures: cfg.Lectures,
		slides:   cfg.Slides,
		grader:   cfg.Grader,
		speech:   cfg.Speech,
		log:      log,
	}

	r.GET("/healthcheck", HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/generate-modules", h.GenerateModules)
		api.POST("/generate-content", h.GenerateContent)
		api.POST("/generate-slides", h.GenerateSlides)
		api.POST("/grade-quiz", h.GradeQuiz)
		api.POST("/text-to-speech", h.TextToSpeech)
	}

	return r
}
