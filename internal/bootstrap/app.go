package bootstrap

import (
	"time"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/analyzer"
	"assessment-backend/internal/report"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/server/middleware"
	"assessment-backend/internal/shared/storage/object"
	localstore "assessment-backend/internal/shared/storage/object/local"
	"assessment-backend/internal/submissions"
)

// App holds shared dependencies with the router fully wired.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	Store              object.Store
	Analyzer           submissions.AnalyzerClient
	SubmissionsService *submissions.Service
	SubmissionsHandler *submissions.Handler
}

// Build prepares dependencies and wires routes. Tests swap the analyzer or
// reports directory through cfg before calling it.
func Build(cfg config.Config) (*App, error) {
	store := localstore.New(cfg.ReportsDir)
	analyzerClient := analyzer.New(cfg.AnalyzerURL, time.Duration(cfg.AnalyzerTimeoutSeconds)*time.Second)

	svc := &submissions.Service{
		SchemaPath: cfg.QuestionnaireFile,
		ScoreTable: scoring.DefaultTable(),
		Store:      store,
		Analyzer:   analyzerClient,
		Builder:    &report.Builder{},
	}
	handler := submissions.NewHandler(svc)

	app := &App{
		Config:             cfg,
		Store:              store,
		Analyzer:           analyzerClient,
		SubmissionsService: svc,
		SubmissionsHandler: handler,
	}
	app.Router = newRouter(cfg, handler)
	return app, nil
}

func newRouter(cfg config.Config, handler *submissions.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	handler.RegisterRoutes(r)
	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
