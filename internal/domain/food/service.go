package food

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

// Service exposes food delivery lookups.
type Service interface {
	Delivery(ctx context.Context, filter Filter) (DeliveryInfo, error)
}

type service struct {
	restaurants []Restaurant
	logger      *slog.Logger
}

// NewService wires up the food domain with the built-in restaurant list.
func NewService(logger *slog.Logger) Service {
	return &service{
		restaurants: defaultRestaurants(),
		logger:      logger.With("component", "food.service"),
	}
}

func (s *service) Delivery(_ context.Context, filter Filter) (DeliveryInfo, error) {
	dietary := strings.ToLower(strings.TrimSpace(filter.Dietary))
	matched := make([]Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if dietary != "" && !slices.Contains(r.Dietary, dietary) {
			continue
		}
		if filter.RUMenu && !r.RUMenu {
			continue
		}
		matched = append(matched, cloneRestaurant(r))
	}
	s.logger.Debug("food delivery filtered", "dietary", dietary, "ru_menu", filter.RUMenu, "matched", len(matched))

	return DeliveryInfo{
		Restaurants:          matched,
		Platforms:            []string{"Meituan", "Ele.me", "Dianping"},
		SLA:                  "~30 мин",
		BudgetShare:          0.20,
		SavingsVsRestaurants: "10–15%",
	}, nil
}

func defaultRestaurants() []Restaurant {
	return []Restaurant{
		{Name: "老北京炸酱面", Rating: 4.6, DeliveryTime: "25-35 мин", MinOrder: 150, Cuisine: "Chinese Traditional", Dietary: []string{"halal"}, RUMenu: true},
		{Name: "海底捞火锅", Rating: 4.8, DeliveryTime: "30-45 мин", MinOrder: 200, Cuisine: "Hot Pot", Dietary: []string{"vegan", "vegetarian"}, RUMenu: false},
	}
}

func cloneRestaurant(r Restaurant) Restaurant {
	r.Dietary = slices.Clone(r.Dietary)
	return r
}
