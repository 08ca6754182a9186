package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"manuara-reservas/internal/handler/api"
	"manuara-reservas/internal/handler/middleware"
	"manuara-reservas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Analytics    *api.AnalyticsHandler
	Notification *api.NotificationHandler
	External     *api.ExternalHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, apiKeyMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Integration partners probing with the wrong verb get 405, not 404
	engine.HandleMethodNotAllowed = true

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())

	// CORS runs globally so OPTIONS preflights are answered even though
	// only GET handlers are registered. The external surface is open to
	// any origin; the admin API keeps the configured allowlist.
	adminCORS := middleware.NewCORSMiddleware(cfg.CORS)
	externalCORS := middleware.NewExternalCORSMiddleware()
	engine.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/external") {
			externalCORS(c)
			return
		}
		adminCORS(c)
	})

	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, apiKeyMiddleware *middleware.APIKeyMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: handlers.Reservation.ListReservations},
				// Static route must precede the :id wildcard
				{Method: http.MethodGet, Path: "/turnovers", Handler: handlers.Reservation.Turnovers},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Reservation.GetReservation},
				{Method: http.MethodPatch, Path: "/:id", Handler: handlers.Reservation.UpdateReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: handlers.Reservation.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: handlers.Reservation.CheckInReservation},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: handlers.Reservation.CheckOutReservation},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: handlers.Reservation.RecordPayment},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: handlers.Availability.Check},
			{Method: http.MethodGet, Path: "/analytics/occupancy", Handler: handlers.Analytics.Occupancy},
			{Method: http.MethodGet, Path: "/notifications", Handler: handlers.Notification.List},
			{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: handlers.Notification.MarkRead},
		})
	}

	external := engine.Group("/external")
	external.Use(apiKeyMiddleware.RequireAPIKey())
	{
		addRoutes(external, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: handlers.External.GetAvailability},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
