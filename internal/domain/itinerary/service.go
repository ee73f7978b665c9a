package itinerary

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

// Service exposes itinerary planning capabilities.
type Service interface {
	Plan(ctx context.Context, req Request) (Itinerary, error)
	Trending(ctx context.Context) ([]TrendingDestination, error)
}

// Store tracks how often destinations are planned.
type Store interface {
	IncrementDestination(ctx context.Context, canonical, display string) error
	TopDestinations(ctx context.Context, limit int) ([]TrendingDestination, error)
}

type service struct {
	cfg    Config
	store  Store
	logger *slog.Logger
}

// NewService wires up the itinerary domain.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	cfg.Defaults = fillDefaults(cfg.Defaults)
	return &service{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "itinerary.service"),
	}
}

// fillDefaults replaces a zero Defaults wholesale and otherwise fills the
// blank city, days and mode. A zero budget is kept.
func fillDefaults(d Defaults) Defaults {
	base := DefaultDefaults()
	if d == (Defaults{}) {
		return base
	}
	if strings.TrimSpace(d.City) == "" {
		d.City = base.City
	}
	if d.Days <= 0 {
		d.Days = base.Days
	}
	if strings.TrimSpace(string(d.Mode)) == "" {
		d.Mode = base.Mode
	}
	return d
}

func (s *service) Plan(ctx context.Context, req Request) (Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return Itinerary{}, apperrors.Wrap(apperrors.CodeCanceled, "request canceled", err)
	}

	normalized := Normalize(req, s.cfg.Defaults)
	if s.cfg.MaxDays > 0 && normalized.Days > s.cfg.MaxDays {
		s.logger.Warn("itinerary days clamped", "requested", normalized.Days, "max", s.cfg.MaxDays)
		normalized.Days = s.cfg.MaxDays
	}
	it := generate(normalized)

	if err := s.store.IncrementDestination(ctx, canonicalCity(normalized.City), normalized.City); err != nil {
		s.logger.Warn("trending increment failed", "city", normalized.City, "error", err)
	}
	s.logger.Info("itinerary generated", "city", it.City, "days", it.Days, "mode", normalized.Mode, "budget", it.TotalBudget)
	return it, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingDestination, error) {
	items, err := s.store.TopDestinations(ctx, s.cfg.TrendingLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreError, "failed to load trending destinations", err)
	}
	return items, nil
}
