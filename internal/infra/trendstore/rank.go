package trendstore

import (
	"sort"

	"github.com/yanqian/travel-planner/internal/domain/itinerary"
)

// rankDestinations orders by count desc then city asc and keeps at most limit
// entries. A non-positive limit keeps everything.
func rankDestinations(items []itinerary.TrendingDestination, limit int) []itinerary.TrendingDestination {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].City < items[j].City
		}
		return items[i].Count > items[j].Count
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
