package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/apply"
	"careerai-backend/internal/extract"
	"careerai-backend/internal/interview"
	"careerai-backend/internal/jobs"
	"careerai-backend/internal/match"
	"careerai-backend/internal/render"
	"careerai-backend/internal/shared/config"
	"careerai-backend/internal/shared/metrics"
	"careerai-backend/internal/shared/server/middleware"
	"careerai-backend/internal/shared/server/respond"
	"careerai-backend/internal/tailor"
	"careerai-backend/internal/users"
	"careerai-backend/internal/vault"
)

// RouterDeps carries the handlers the router wires up. Nil handlers are
// skipped so tests can build partial routers.
type RouterDeps struct {
	Config           config.Config
	MatchHandler     *match.Handler
	TailorHandler    *tailor.Handler
	JobsHandler      *jobs.Handler
	VaultHandler     *vault.Handler
	ExtractHandler   *extract.Handler
	RenderHandler    *render.Handler
	ApplyHandler     *apply.Handler
	InterviewHandler *interview.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *users.GoogleService
}

// NewRouter constructs the Gin engine with the middleware chain and all
// registered routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.MatchHandler != nil {
		deps.MatchHandler.RegisterRoutes(api)
	}
	if deps.TailorHandler != nil {
		deps.TailorHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.VaultHandler != nil {
		deps.VaultHandler.RegisterRoutes(api)
	}
	if deps.ExtractHandler != nil {
		deps.ExtractHandler.RegisterRoutes(api)
	}
	if deps.RenderHandler != nil {
		deps.RenderHandler.RegisterRoutes(api)
	}
	if deps.ApplyHandler != nil {
		deps.ApplyHandler.RegisterRoutes(api)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(api)
	}

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
