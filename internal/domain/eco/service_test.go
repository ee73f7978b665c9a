package eco

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/travel-planner/pkg/errors"
)

func TestFootprint(t *testing.T) {
	tests := []struct {
		name string
		legs []Leg
		want float64
	}{
		{name: "empty", legs: nil, want: 0},
		{name: "flight", legs: []Leg{{Mode: "flight", DistanceKM: 1000}}, want: 150},
		{name: "mixed", legs: []Leg{{Mode: "flight", DistanceKM: 100}, {Mode: "train", DistanceKM: 30}, {Mode: "metro", DistanceKM: 7}}, want: 16.19},
		{name: "unknown mode", legs: []Leg{{Mode: "bike", DistanceKM: 10}}, want: 1},
		{name: "negative ignored", legs: []Leg{{Mode: "car", DistanceKM: -50}, {Mode: "car", DistanceKM: 10}}, want: 1.2},
		{name: "nan ignored", legs: []Leg{{Mode: "car", DistanceKM: math.NaN()}}, want: 0},
		{name: "rounds", legs: []Leg{{Mode: "train", DistanceKM: 1.23}}, want: 0.04},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, Footprint(tc.legs), 1e-9)
		})
	}
}

func TestCO2IncludesAdvice(t *testing.T) {
	svc := NewService(&stubHotels{}, newTestLogger())
	res, err := svc.CO2(context.Background(), []Leg{{Mode: "metro", DistanceKM: 50}})
	require.NoError(t, err)
	require.Equal(t, 1.0, res.TotalCO2KG)
	require.Equal(t, co2Advice, res.Advice)
}

func TestHotels(t *testing.T) {
	repo := &stubHotels{items: []Hotel{{Name: "Eco Beijing Hotel", EcoCert: "LEED Gold", Price: 9000, Rating: 4.6}}}
	svc := NewService(repo, newTestLogger())

	resp, err := svc.Hotels(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Пекин", resp.City)
	require.Equal(t, repo.items, resp.Hotels)
	require.Equal(t, "Пекин", repo.lastCity)
}

func TestHotelsEmptyIsNotNil(t *testing.T) {
	svc := NewService(&stubHotels{}, newTestLogger())
	resp, err := svc.Hotels(context.Background(), "Урумчи")
	require.NoError(t, err)
	require.NotNil(t, resp.Hotels)
	require.Empty(t, resp.Hotels)
}

func TestHotelsRepositoryError(t *testing.T) {
	svc := NewService(&stubHotels{err: errors.New("timeout")}, newTestLogger())
	_, err := svc.Hotels(context.Background(), "Пекин")
	require.True(t, apperrors.IsCode(err, apperrors.CodeCatalogError))
}

func TestWasteTips(t *testing.T) {
	svc := NewService(&stubHotels{}, newTestLogger())
	resp, err := svc.WasteTips(context.Background(), "Шанхай")
	require.NoError(t, err)
	require.Equal(t, "Шанхай", resp.City)
	require.Len(t, resp.Tips, 3)
}

type stubHotels struct {
	items    []Hotel
	err      error
	lastCity string
}

func (s *stubHotels) EcoHotels(_ context.Context, city string) ([]Hotel, error) {
	s.lastCity = city
	return s.items, s.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
