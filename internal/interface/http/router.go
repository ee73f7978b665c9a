package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-planner/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	httpLogger := logger.With("component", "http.router")
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(httpLogger),
		corsMiddleware(cfg.HTTP.CORS),
		errorHandlingMiddleware(httpLogger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, httpLogger),
	)

	api := router.Group("/api/v1")
	{
		api.GET("/healthz", handler.Health)

		api.POST("/itineraries", handler.PlanItinerary)
		api.GET("/itineraries/trending", handler.TrendingDestinations)
		api.GET("/travel-context", handler.TravelContext)

		api.GET("/culture/events", handler.CultureEvents)
		api.GET("/culture/recommendations", handler.CultureRecommendations)
		api.POST("/culture/chat", handler.CultureChat)
		api.GET("/culture/ar-filters", handler.ARFilters)

		api.GET("/food/delivery", handler.FoodDelivery)

		api.POST("/eco/co2", handler.EcoCO2)
		api.GET("/eco/hotels", handler.EcoHotels)
		api.GET("/eco/waste-tips", handler.EcoWasteTips)

		api.POST("/translate", handler.Translate)
		api.POST("/tax-refund", handler.TaxRefund)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
