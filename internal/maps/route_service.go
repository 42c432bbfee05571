package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// ErrNoRoute is returned when the Directions API finds no route.
var ErrNoRoute = errors.New("no route found")

// Leg is the driving distance and duration of the first route leg.
type Leg struct {
	Meters   int
	Duration time.Duration
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client   *maps.Client
	language string
	region   string
}

// NewRouteService creates a RouteService. Extra client options (base URL,
// HTTP client) are mostly useful in tests.
func NewRouteService(apiKey, language, region string, opts ...maps.ClientOption) (*RouteService, error) {
	client, err := newClient(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &RouteService{client: client, language: language, region: region}, nil
}

// Drive returns the driving leg from origin to destination. Both accept
// anything the Directions API does: "lat,lng", "place_id:<id>" or an address.
func (s *RouteService) Drive(ctx context.Context, origin, destination string) (Leg, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    s.language,
		Region:      s.region,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Leg{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Leg{}, ErrNoRoute
	}

	leg := routes[0].Legs[0]
	return Leg{Meters: leg.Distance.Meters, Duration: leg.Duration}, nil
}

func newClient(apiKey string, opts ...maps.ClientOption) (*maps.Client, error) {
	all := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}
