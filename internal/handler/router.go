package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"breakfast-deals/internal/handler/api"
	"breakfast-deals/internal/handler/middleware"
	"breakfast-deals/internal/pkg/config"
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
	logger *slog.Logger,
	catalogHandler *api.CatalogHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, catalogHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/hotels"), []route{
			{Method: http.MethodGet, Path: "/booked", Handler: catalogHandler.GetBookedHotels},
			{Method: http.MethodGet, Path: "/booked/:id", Handler: catalogHandler.GetBookedHotel},
			{Method: http.MethodGet, Path: "/search", Handler: catalogHandler.SearchHotels},
			{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetHotel},
			{Method: http.MethodGet, Path: "/:id/breakfast", Handler: catalogHandler.GetBreakfastMenu},
		})

		addRoutes(apiGroup.Group("/deals"), []route{
			{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListDeals},
			{Method: http.MethodGet, Path: "/today", Handler: catalogHandler.GetTodaysDeals},
			{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetDeal},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: reservationHandler.GetAvailability},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListDealReservations},
		})

		addRoutes(apiGroup.Group("/images"), []route{
			{Method: http.MethodGet, Path: "/breakfast", Handler: catalogHandler.BreakfastImage},
			{Method: http.MethodGet, Path: "/hotel", Handler: catalogHandler.HotelImage},
			{Method: http.MethodGet, Path: "/search", Handler: catalogHandler.SearchImages},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
			{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
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
		default:
			g.Handle(r.Method, r.Path, h)
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
