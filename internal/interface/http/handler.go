package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/internal/domain/eco"
	"github.com/yanqian/travel-planner/internal/domain/essentials"
	"github.com/yanqian/travel-planner/internal/domain/food"
	"github.com/yanqian/travel-planner/internal/domain/itinerary"
	"github.com/yanqian/travel-planner/internal/domain/travelinfo"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	itinerarySvc  itinerary.Service
	travelInfoSvc travelinfo.Service
	cultureSvc    culture.Service
	foodSvc       food.Service
	ecoSvc        eco.Service
	essentialsSvc essentials.Service
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(
	itinerarySvc itinerary.Service,
	travelInfoSvc travelinfo.Service,
	cultureSvc culture.Service,
	foodSvc food.Service,
	ecoSvc eco.Service,
	essentialsSvc essentials.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		itinerarySvc:  itinerarySvc,
		travelInfoSvc: travelInfoSvc,
		cultureSvc:    cultureSvc,
		foodSvc:       foodSvc,
		ecoSvc:        ecoSvc,
		essentialsSvc: essentialsSvc,
		logger:        logger.With("component", "http.handler"),
	}
}

type itineraryResponse struct {
	itinerary.Itinerary
	Totals itinerary.Totals `json:"totals"`

	// RequestedDays is set only when the plan was capped below the requested length.
	RequestedDays int `json:"requested_days,omitempty"`
}

// PlanItinerary generates a day-by-day plan. An empty body or unreadable numbers
// fall back to defaults. Plans over the configured maximum are capped and
// requested_days echoes the original length.
func (h *Handler) PlanItinerary(c *gin.Context) {
	var req itinerary.Request
	if !bindOptionalJSON(c, &req) {
		return
	}

	it, err := h.itinerarySvc.Plan(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, "itinerary_failed", err)
		return
	}

	resp := itineraryResponse{Itinerary: it, Totals: itinerary.Summarize(it)}
	if req.Days > it.Days {
		resp.RequestedDays = req.Days
	}
	c.JSON(http.StatusOK, resp)
}

// TrendingDestinations returns the most planned cities.
func (h *Handler) TrendingDestinations(c *gin.Context) {
	items, err := h.itinerarySvc.Trending(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, "trending_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": items})
}

// TravelContext returns visa, weather and budget hints for the form.
func (h *Handler) TravelContext(c *gin.Context) {
	resp, err := h.travelInfoSvc.Context(c.Request.Context(), c.Query("city"), queryInt(c, "days"))
	if err != nil {
		abortWithDomainError(c, "travel_context_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CultureEvents lists events for a city and month.
func (h *Handler) CultureEvents(c *gin.Context) {
	resp, err := h.cultureSvc.Events(c.Request.Context(), c.Query("city"), queryInt(c, "month"))
	if err != nil {
		abortWithDomainError(c, "culture_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CultureRecommendations lists sights for a city.
func (h *Handler) CultureRecommendations(c *gin.Context) {
	resp, err := h.cultureSvc.Recommendations(c.Request.Context(), c.Query("city"))
	if err != nil {
		abortWithDomainError(c, "culture_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CultureChat answers a tour-guide question.
func (h *Handler) CultureChat(c *gin.Context) {
	var req culture.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.cultureSvc.Chat(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, "chat_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ARFilters lists available camera filters.
func (h *Handler) ARFilters(c *gin.Context) {
	filters, err := h.cultureSvc.ARFilters(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, "culture_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filters": filters})
}

// FoodDelivery lists delivery restaurants matching the filter.
func (h *Handler) FoodDelivery(c *gin.Context) {
	filter := food.Filter{
		Dietary: c.Query("dietary"),
		RUMenu:  queryBool(c, "ru_menu"),
	}
	resp, err := h.foodSvc.Delivery(c.Request.Context(), filter)
	if err != nil {
		abortWithDomainError(c, "food_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EcoCO2 estimates the footprint of the submitted legs.
func (h *Handler) EcoCO2(c *gin.Context) {
	var req eco.CO2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.ecoSvc.CO2(c.Request.Context(), req.Legs)
	if err != nil {
		abortWithDomainError(c, "eco_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EcoHotels lists certified hotels for a city.
func (h *Handler) EcoHotels(c *gin.Context) {
	resp, err := h.ecoSvc.Hotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		abortWithDomainError(c, "eco_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EcoWasteTips lists waste sorting tips for a city.
func (h *Handler) EcoWasteTips(c *gin.Context) {
	resp, err := h.ecoSvc.WasteTips(c.Request.Context(), c.Query("city"))
	if err != nil {
		abortWithDomainError(c, "eco_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Translate runs the phrasebook translator.
func (h *Handler) Translate(c *gin.Context) {
	var req essentials.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.essentialsSvc.Translate(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, "translate_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TaxRefund computes the tax free refund for a purchase.
func (h *Handler) TaxRefund(c *gin.Context) {
	var req essentials.TaxRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.essentialsSvc.TaxRefund(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, "tax_refund_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

// queryInt returns 0 for missing or malformed values so services apply their defaults.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
