package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carbonx/internal/application"
	"carbonx/internal/config"
	"carbonx/internal/domain/validation"
	"carbonx/internal/ports/output"
)

// sessionTTL is how long an idle wizard session survives. A participant
// who walks away simply restarts the form.
const sessionTTL = 30 * time.Minute

// Server is the HTTP adapter.
type Server struct {
	engine *gin.Engine
	config *config.Config
}

// NewServer creates a Server and wires ports: output adapters ->
// application (use cases) -> handler -> routes.
func NewServer(cfg *config.Config, participantRepo output.ParticipantRepository, translator output.Translator) *Server {
	schema := validation.NewSchema(translator)
	registrationUC := application.NewRegistrationService(participantRepo, schema)
	rosterUC := application.NewRosterService(participantRepo)

	sessions := newSessionStore(sessionTTL)
	go sessions.RunJanitor()

	handler := NewHandler(registrationUC, rosterUC, schema, sessions, translator, cfg.DefaultLocale)

	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept-Language"},
	}))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	{
		participants := api.Group("/participants")
		{
			participants.POST("", handler.Register)
			participants.POST("/validate", handler.ValidateStep)
		}

		wiz := api.Group("/wizard")
		{
			wiz.POST("", handler.WizardCreate)
			wiz.GET("/:token", handler.WizardGet)
			wiz.PATCH("/:token", handler.WizardSetFields)
			wiz.POST("/:token/advance", handler.WizardAdvance)
			wiz.POST("/:token/retreat", handler.WizardRetreat)
			wiz.POST("/:token/submit", handler.WizardSubmit)
			wiz.POST("/:token/restart", handler.WizardRestart)
		}
	}

	admin := engine.Group("/admin")
	admin.Use(AdminGate(cfg.AdminPassword, translator, cfg.DefaultLocale))
	{
		admin.GET("/participants", handler.AdminList)
		admin.GET("/participants/export", handler.AdminExport)
	}

	return &Server{
		engine: engine,
		config: cfg,
	}
}

// Engine exposes the router, mainly for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run blocks serving HTTP on the configured port.
func (s *Server) Run() error {
	return s.engine.Run(":" + s.config.ServerPort)
}
