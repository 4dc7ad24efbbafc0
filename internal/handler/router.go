package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tracking-number-generator/internal/handler/api"
	reqdto "tracking-number-generator/internal/handler/dto/request"
	"tracking-number-generator/internal/handler/middleware"
	"tracking-number-generator/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, trackingHandler *api.TrackingNumberHandler, healthHandler *api.HealthHandler) {
	if err := reqdto.RegisterValidators(); err != nil {
		slog.Error("failed to register request validators", "error", err)
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, trackingHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, trackingHandler *api.TrackingNumberHandler, healthHandler *api.HealthHandler) {
	engine.GET("/health", healthHandler.Health)

	tracking := engine.Group("/next-tracking-number")
	{
		addRoutes(tracking, []route{
			{Method: http.MethodGet, Path: "", Handler: trackingHandler.NextTrackingNumber, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodGet, Path: "/health", Handler: healthHandler.Health},
		})
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		tracking.GET("/debug", api.DebugEcho)
	}
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
