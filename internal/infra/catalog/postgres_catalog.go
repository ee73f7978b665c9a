package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/internal/domain/eco"
)

// PostgresCatalog reads sights and eco hotels using pgx.
//
// Expected schema:
//
//	CREATE TABLE sights (city TEXT NOT NULL, name TEXT NOT NULL, score NUMERIC(3,1), reviews INTEGER);
//	CREATE TABLE eco_hotels (city TEXT NOT NULL, name TEXT NOT NULL, eco_cert TEXT, price INTEGER, rating NUMERIC(3,1));
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog constructs the catalog.
func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{pool: pool}
}

// Sights returns the sights of a city ordered by score.
func (c *PostgresCatalog) Sights(ctx context.Context, city string) ([]culture.Sight, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT name, score::float8, reviews
		FROM sights
		WHERE lower(city) = $1
		ORDER BY score DESC, name
	`, cityKey(city))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (culture.Sight, error) {
		var s culture.Sight
		err := row.Scan(&s.Name, &s.Score, &s.Reviews)
		return s, err
	})
}

// EcoHotels returns the eco hotels of a city ordered by price.
func (c *PostgresCatalog) EcoHotels(ctx context.Context, city string) ([]eco.Hotel, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT name, coalesce(eco_cert, ''), price, rating::float8
		FROM eco_hotels
		WHERE lower(city) = $1
		ORDER BY price, name
	`, cityKey(city))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (eco.Hotel, error) {
		var h eco.Hotel
		err := row.Scan(&h.Name, &h.EcoCert, &h.Price, &h.Rating)
		return h, err
	})
}

var (
	_ culture.SightRepository = (*PostgresCatalog)(nil)
	_ eco.HotelRepository     = (*PostgresCatalog)(nil)
)
