package eco

import (
	"context"
	"log/slog"
	"math"
	"strings"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

const (
	defaultCity   = "Пекин"
	unknownFactor = 0.1
	co2Advice     = "Выбирайте поезда и метро для снижения выбросов."
)

// kg CO2 per passenger-km.
var emissionFactors = map[string]float64{
	"flight": 0.15,
	"train":  0.035,
	"metro":  0.02,
	"car":    0.12,
}

// Service exposes the eco-travel tools.
type Service interface {
	CO2(ctx context.Context, legs []Leg) (CO2Result, error)
	Hotels(ctx context.Context, city string) (HotelsResponse, error)
	WasteTips(ctx context.Context, city string) (WasteTipsResponse, error)
}

// HotelRepository lists eco hotels for a city.
type HotelRepository interface {
	EcoHotels(ctx context.Context, city string) ([]Hotel, error)
}

type service struct {
	hotels HotelRepository
	logger *slog.Logger
}

// NewService wires up the eco domain.
func NewService(hotels HotelRepository, logger *slog.Logger) Service {
	return &service{hotels: hotels, logger: logger.With("component", "eco.service")}
}

func (s *service) CO2(_ context.Context, legs []Leg) (CO2Result, error) {
	return CO2Result{TotalCO2KG: Footprint(legs), Advice: co2Advice}, nil
}

// Footprint sums distance times the mode factor, rounded to 2 decimals.
// Negative or non-finite distances count as zero.
func Footprint(legs []Leg) float64 {
	var total float64
	for _, leg := range legs {
		dist := leg.DistanceKM
		if dist <= 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
			continue
		}
		factor, ok := emissionFactors[strings.ToLower(strings.TrimSpace(leg.Mode))]
		if !ok {
			factor = unknownFactor
		}
		total += dist * factor
	}
	return math.Round(total*100) / 100
}

func (s *service) Hotels(ctx context.Context, city string) (HotelsResponse, error) {
	city = cityOrDefault(city)
	hotels, err := s.hotels.EcoHotels(ctx, city)
	if err != nil {
		return HotelsResponse{}, apperrors.Wrap(apperrors.CodeCatalogError, "failed to load eco hotels", err)
	}
	if hotels == nil {
		hotels = []Hotel{}
	}
	return HotelsResponse{City: city, Hotels: hotels}, nil
}

func (s *service) WasteTips(_ context.Context, city string) (WasteTipsResponse, error) {
	return WasteTipsResponse{
		City: cityOrDefault(city),
		Tips: []string{
			"Используйте многоразовую бутылку",
			"Сортируйте мусор: пищевые отходы отдельно",
			"Ищите отметку Trip.com Green при бронировании",
		},
	}, nil
}

func cityOrDefault(city string) string {
	if c := strings.TrimSpace(city); c != "" {
		return c
	}
	return defaultCity
}
