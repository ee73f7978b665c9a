package travelinfo

import (
	"context"
	"log/slog"
	"strings"
)

const (
	defaultCity = "Пекин"
	defaultDays = 3
)

// Service returns travel context for a destination.
type Service interface {
	Context(ctx context.Context, city string, days int) (TravelContext, error)
}

type service struct {
	logger *slog.Logger
}

// NewService wires up the travel context domain.
func NewService(logger *slog.Logger) Service {
	return &service{logger: logger.With("component", "travelinfo.service")}
}

func (s *service) Context(_ context.Context, city string, days int) (TravelContext, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = defaultCity
	}
	if days <= 0 {
		days = defaultDays
	}
	s.logger.Debug("travel context requested", "city", city, "days", days)

	return TravelContext{
		City: city,
		Days: days,
		VisaFree: VisaFree{
			Available: true,
			MaxDays:   30,
			Note:      "Безвиз до 30 дней",
		},
		Weather: Weather{
			Summary: "Солнечно, возможны осадки",
			TempC:   Temperature{Day: 24, Night: 16},
		},
		Festivals: []Festival{
			{Name: "Праздник весны (Чуньцзе)", Month: 2},
			{Name: "Фестиваль фонарей", Month: 2},
		},
		BudgetBaseline: BudgetBaseline{
			FlightRUB:        50000,
			HotelPerNightRUB: 10000,
			Note:             "На 15% дешевле, чем в 2024",
		},
	}, nil
}
