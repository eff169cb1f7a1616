package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flute-live-api/internal/handler/api"
	"flute-live-api/internal/handler/middleware"
	"flute-live-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	liveInfoHandler *api.LiveInfoHandler,
	reservationHandler *api.ReservationHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	statusHandler *api.StatusHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, liveInfoHandler, reservationHandler, authHandler, adminHandler, statusHandler, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	liveInfoHandler *api.LiveInfoHandler,
	reservationHandler *api.ReservationHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	statusHandler *api.StatusHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/live-info", Handler: liveInfoHandler.GetLiveInfo},
			{Method: http.MethodPost, Path: "/reservation", Handler: reservationHandler.SubmitReservation},
		})

		if gin.Mode() == gin.DebugMode {
			apiGroup.GET("/debug/sheets", statusHandler.CheckSheets)
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/auth", Handler: authHandler.Login},
				{Method: http.MethodGet, Path: "/status", Handler: statusHandler.GetStatus},
			})

			authRequired := admin.Group("")
			authRequired.Use(adminAuth.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/live-info", Handler: adminHandler.GetLiveInfo},
				{Method: http.MethodPost, Path: "/live-info", Handler: adminHandler.UpdateLiveInfo},
				{Method: http.MethodPost, Path: "/live-info/image", Handler: adminHandler.UploadProgramImage},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
