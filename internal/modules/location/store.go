// README: Route cache backed by Redis; keeps repeated quotes off the Directions API.
package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"taxibook/internal/modules/pricing"
)

const routeKeyPrefix = "taxibook:route:"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) GetRoute(ctx context.Context, from, to string) (pricing.Route, error) {
	data, err := s.redis.Get(ctx, routeKey(from, to)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.Route{}, ErrRouteNotCached
		}
		return pricing.Route{}, fmt.Errorf("redis get route: %w", err)
	}

	var route pricing.Route
	if err := json.Unmarshal([]byte(data), &route); err != nil {
		return pricing.Route{}, fmt.Errorf("unmarshal cached route: %w", err)
	}
	return route, nil
}

func (s *Store) SetRoute(ctx context.Context, from, to string, route pricing.Route, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("marshal route for cache: %w", err)
	}
	if err := s.redis.Set(ctx, routeKey(from, to), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set route: %w", err)
	}
	return nil
}

func routeKey(from, to string) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return routeKeyPrefix + norm(from) + "|" + norm(to)
}
