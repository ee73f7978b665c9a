package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/internal/domain/eco"
	"github.com/yanqian/travel-planner/internal/domain/essentials"
	"github.com/yanqian/travel-planner/internal/domain/food"
	"github.com/yanqian/travel-planner/internal/domain/itinerary"
	"github.com/yanqian/travel-planner/internal/domain/travelinfo"
	"github.com/yanqian/travel-planner/internal/infra/catalog"
	"github.com/yanqian/travel-planner/internal/infra/config"
	"github.com/yanqian/travel-planner/internal/infra/trendstore"
	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

func TestRouter_PlanItinerary(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/itineraries", `{"city":"Пекин","days":2,"budget":100000,"mode":"cultural"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got struct {
		itinerary.Itinerary
		Totals itinerary.Totals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Пекин", got.City)
	require.Equal(t, 2, got.Days)
	require.Equal(t, 100000, got.TotalBudget)
	require.Len(t, got.DailyPlans, 2)
	require.Equal(t, "19:00", got.DailyPlans[1].Activities[4].Time)
	require.Equal(t, []int{9000, 9000}, got.Totals.DayCosts)
	require.Equal(t, 18000, got.Totals.TotalCost)
}

func TestRouter_PlanItineraryEmptyBodyUsesDefaults(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/itineraries", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got itinerary.Itinerary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Пекин", got.City)
	require.Len(t, got.DailyPlans, 3)
}

func TestRouter_PlanItineraryCoercesNumbers(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	cases := []struct {
		body   string
		days   int
		budget int
	}{
		{`{"days":"2"}`, 2, 100000},
		{`{"days":2.5}`, 2, 100000},
		{`{"days":"abc"}`, 3, 100000},
		{`{"days":-1,"budget":"5000"}`, 3, 5000},
		{`{"budget":"100000"}`, 3, 100000},
		{`{"days":null,"budget":null}`, 3, 100000},
	}
	for _, tc := range cases {
		recorder := performRequest(server, http.MethodPost, "/api/v1/itineraries", tc.body)
		require.Equal(t, http.StatusOK, recorder.Code, tc.body)

		var got itinerary.Itinerary
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		require.Equal(t, tc.days, got.Days, tc.body)
		require.Len(t, got.DailyPlans, tc.days, tc.body)
		require.Equal(t, tc.budget, got.TotalBudget, tc.body)
	}
}

func TestRouter_PlanItineraryReportsCappedDays(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/itineraries", `{"days":100}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got struct {
		Days          int                 `json:"days"`
		DailyPlans    []itinerary.DayPlan `json:"daily_plans"`
		RequestedDays int                 `json:"requested_days"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, 60, got.Days)
	require.Len(t, got.DailyPlans, 60)
	require.Equal(t, 100, got.RequestedDays)

	recorder = performRequest(server, http.MethodPost, "/api/v1/itineraries", `{"days":5}`)
	require.NotContains(t, recorder.Body.String(), "requested_days")
}

func TestRouter_PlanItineraryInvalidJSON(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/itineraries", `{"days":`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_TrendingCountsPlans(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	for _, city := range []string{"Шанхай", "Пекин", "шанхай"} {
		recorder := performRequest(server, http.MethodPost, "/api/v1/itineraries", `{"city":"`+city+`","days":1}`)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := performRequest(server, http.MethodGet, "/api/v1/itineraries/trending", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Destinations []itinerary.TrendingDestination `json:"destinations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Destinations, 2)
	require.Equal(t, int64(2), body.Destinations[0].Count)
	require.Equal(t, int64(1), body.Destinations[1].Count)
	require.Equal(t, "Пекин", body.Destinations[1].City)
}

func TestRouter_TrendingStoreFailure(t *testing.T) {
	svc := &stubItinerary{trendingErr: apperrors.Wrap(apperrors.CodeStoreError, "failed to load trending destinations", errors.New("valkey down"))}
	server := newRouterUnderTest(t, svc, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodGet, "/api/v1/itineraries/trending", "")
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	require.Equal(t, "store_error", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_TravelContextMalformedDays(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodGet, "/api/v1/travel-context?city=Сиань&days=abc", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got travelinfo.TravelContext
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Сиань", got.City)
	require.Equal(t, 3, got.Days)
}

func TestRouter_CultureChatFallsBackWithoutLLM(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/culture/chat", `{"message":"Что посмотреть?"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got culture.ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Что посмотреть?", got.Message)
	require.Equal(t, culture.ReplySourceStub, got.Source)
	require.NotEmpty(t, got.Reply)
}

func TestRouter_FoodDeliveryFilters(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodGet, "/api/v1/food/delivery?dietary=HALAL&ru_menu=true", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got food.DeliveryInfo
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.Restaurants, 1)
	require.True(t, got.Restaurants[0].RUMenu)
}

func TestRouter_EcoCO2(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/eco/co2", `{"legs":[{"mode":"flight","distance_km":1000},{"mode":"train","distance_km":100}]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got eco.CO2Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.InDelta(t, 153.5, got.TotalCO2KG, 1e-9)
}

func TestRouter_Translate(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/translate", `{"text":"Thank You"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got essentials.Translation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "спасибо", got.Translated)
	require.Equal(t, "ru", got.TargetLanguage)
}

func TestRouter_TaxRefundInvalidAmount(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	recorder := performRequest(server, http.MethodPost, "/api/v1/tax-refund", `{"amount":0}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid_request", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	rec = performRequest(server, http.MethodGet, "/api/v1/healthz", "")
	require.Len(t, rec.Header().Get(requestIDHeader), 36)
}

func TestRouter_RateLimit(t *testing.T) {
	server := newRouterUnderTest(t, nil, config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1})

	require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/api/v1/healthz", "").Code)

	recorder := performRequest(server, http.MethodGet, "/api/v1/healthz", "")
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestIPRateLimiterRefillsAndEvicts(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 1})
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.2"))

	now = now.Add(time.Second)
	require.True(t, limiter.allow("10.0.0.1"))

	now = now.Add(10 * time.Minute)
	limiter.allow("10.0.0.3")
	require.Len(t, limiter.visitors, 1)
}

func performRequest(server *http.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, itinerarySvc itinerary.Service, rl config.RateLimitConfig) *http.Server {
	t.Helper()
	logger := newTestLogger()
	if itinerarySvc == nil {
		itinerarySvc = itinerary.NewService(itinerary.Config{MaxDays: 60, TrendingLimit: 10}, trendstore.NewMemoryStore(), logger)
	}
	cat := catalog.NewMemoryCatalog()
	handler := NewHandler(
		itinerarySvc,
		travelinfo.NewService(logger),
		culture.NewService(culture.Config{}, cat, nil, logger),
		food.NewService(logger),
		eco.NewService(cat, logger),
		essentials.NewService(logger),
		logger,
	)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			RateLimit:    rl,
		},
	}
	return NewRouter(cfg, handler, logger)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubItinerary struct {
	trendingErr error
}

func (s *stubItinerary) Plan(_ context.Context, req itinerary.Request) (itinerary.Itinerary, error) {
	return itinerary.Generate(req), nil
}

func (s *stubItinerary) Trending(_ context.Context) ([]itinerary.TrendingDestination, error) {
	return nil, s.trendingErr
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
