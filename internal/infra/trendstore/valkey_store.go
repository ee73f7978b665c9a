package trendstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-planner/internal/domain/itinerary"
)

// ValkeyStore keeps destination counters in a sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "itinerary"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) IncrementDestination(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

// TopDestinations returns the most planned cities, ties broken by display
// name. Members tied with the last entry of the window are fetched too so the
// cut at limit matches the in-memory ordering.
func (s *ValkeyStore) TopDestinations(ctx context.Context, limit int) ([]itinerary.TrendingDestination, error) {
	if limit <= 0 {
		limit = 10
	}
	scores, err := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build()).AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	if cutoff, full := scoreCutoff(scores, limit); full {
		scores, err = s.client.Do(ctx, s.client.B().Zrevrangebyscore().Key(s.trendingKey()).Max("+inf").Min(cutoff).Withscores().Build()).AsZScores()
		if err != nil {
			return nil, err
		}
	}
	items := toDestinations(scores, func(member string) string { return s.fetchDisplay(ctx, member) })
	return rankDestinations(items, limit), nil
}

// scoreCutoff reports the lowest score of a full window, formatted for ZRANGEBYSCORE.
func scoreCutoff(scores []valkey.ZScore, limit int) (string, bool) {
	if len(scores) == 0 || len(scores) < limit {
		return "", false
	}
	return strconv.FormatFloat(scores[len(scores)-1].Score, 'f', -1, 64), true
}

func toDestinations(scores []valkey.ZScore, display func(string) string) []itinerary.TrendingDestination {
	out := make([]itinerary.TrendingDestination, 0, len(scores))
	for _, sc := range scores {
		out = append(out, itinerary.TrendingDestination{City: display(sc.Member), Count: int64(sc.Score)})
	}
	return out
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	display, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:destinations", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ itinerary.Store = (*ValkeyStore)(nil)
