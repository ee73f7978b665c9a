package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/internal/domain/eco"
)

// MemoryCatalog serves sights and eco hotels from process memory. Cities
// without their own entries get the default listing.
type MemoryCatalog struct {
	mu            sync.RWMutex
	sights        map[string][]culture.Sight
	hotels        map[string][]eco.Hotel
	defaultSights []culture.Sight
	defaultHotels []eco.Hotel
}

// NewMemoryCatalog constructs a catalog seeded with the Beijing listing,
// which also serves as the default for unknown cities.
func NewMemoryCatalog() *MemoryCatalog {
	c := &MemoryCatalog{
		sights: make(map[string][]culture.Sight),
		hotels: make(map[string][]eco.Hotel),
		defaultSights: []culture.Sight{
			{Name: "Запретный город", Score: 9.6, Reviews: 250000},
			{Name: "Храм Неба", Score: 9.2, Reviews: 180000},
			{Name: "Летний дворец", Score: 9.4, Reviews: 200000},
		},
		defaultHotels: []eco.Hotel{
			{Name: "Eco Beijing Hotel", EcoCert: "LEED Gold", Price: 9000, Rating: 4.6},
			{Name: "Green Dragon Inn", EcoCert: "Green Key", Price: 7500, Rating: 4.4},
		},
	}
	c.putSights("Пекин", c.defaultSights)
	c.putHotels("Пекин", c.defaultHotels)
	return c
}

func (c *MemoryCatalog) putSights(city string, sights []culture.Sight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sights[cityKey(city)] = append([]culture.Sight(nil), sights...)
}

func (c *MemoryCatalog) putHotels(city string, hotels []eco.Hotel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hotels[cityKey(city)] = append([]eco.Hotel(nil), hotels...)
}

// Sights implements culture.SightRepository.
func (c *MemoryCatalog) Sights(_ context.Context, city string) ([]culture.Sight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.sights[cityKey(city)]
	if !ok {
		items = c.defaultSights
	}
	return append([]culture.Sight(nil), items...), nil
}

// EcoHotels implements eco.HotelRepository.
func (c *MemoryCatalog) EcoHotels(_ context.Context, city string) ([]eco.Hotel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.hotels[cityKey(city)]
	if !ok {
		items = c.defaultHotels
	}
	return append([]eco.Hotel(nil), items...), nil
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

var (
	_ culture.SightRepository = (*MemoryCatalog)(nil)
	_ eco.HotelRepository     = (*MemoryCatalog)(nil)
)
