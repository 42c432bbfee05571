// README: Location service; address search, place resolution, cached routing and service-area checks.
package location

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"taxibook/internal/catalog"
	"taxibook/internal/maps"
	"taxibook/internal/modules/pricing"
	"taxibook/internal/types"
)

type Places interface {
	Autocomplete(ctx context.Context, input string) ([]maps.Prediction, error)
	Details(ctx context.Context, placeID string) (maps.PlaceDetails, error)
}

type Directions interface {
	Drive(ctx context.Context, origin, destination string) (maps.Leg, error)
}

type Deps struct {
	Places     Places
	Directions Directions
	Store      *Store
	Areas      *AreaIndex
	RouteTTL   time.Duration
	Log        *zap.Logger
}

type Service struct {
	places     Places
	directions Directions
	store      *Store
	areas      *AreaIndex
	routeTTL   time.Duration
	log        *zap.Logger
}

func NewService(d Deps) *Service {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Areas == nil {
		d.Areas = NewAreaIndex(catalog.PriorityTowns, 3)
	}
	return &Service{
		places:     d.Places,
		directions: d.Directions,
		store:      d.Store,
		areas:      d.Areas,
		routeTTL:   d.RouteTTL,
		log:        d.Log,
	}
}

// Search returns autocomplete predictions; inputs shorter than MinSearchLength yield none.
func (s *Service) Search(ctx context.Context, input string) ([]maps.Prediction, error) {
	input = strings.TrimSpace(input)
	if utf8.RuneCountInString(input) < MinSearchLength {
		return []maps.Prediction{}, nil
	}
	if s.places == nil {
		return nil, ErrUnavailable
	}
	preds, err := s.places.Autocomplete(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return preds, nil
}

// Resolve turns a place id into an address with coordinates.
func (s *Service) Resolve(ctx context.Context, placeID string) (types.Location, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return types.Location{}, ErrNotFound
	}
	if s.places == nil {
		return types.Location{}, ErrUnavailable
	}
	d, err := s.places.Details(ctx, placeID)
	if err != nil {
		if errors.Is(err, maps.ErrPlaceNotFound) {
			return types.Location{}, ErrNotFound
		}
		return types.Location{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return types.Location{
		Address: d.Address,
		Coords:  &types.Point{Lat: d.Lat, Lng: d.Lng},
		PlaceID: d.PlaceID,
	}, nil
}

// Route implements pricing.Router with a read-through cache.
func (s *Service) Route(ctx context.Context, from, to types.Location) (pricing.Route, error) {
	origin, dest := from.Waypoint(), to.Waypoint()

	if s.store != nil {
		cached, err := s.store.GetRoute(ctx, origin, dest)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrRouteNotCached) {
			s.log.Warn("route cache read failed", zap.Error(err))
		}
	}

	if s.directions == nil {
		return pricing.Route{}, ErrUnavailable
	}
	leg, err := s.directions.Drive(ctx, origin, dest)
	if err != nil {
		return pricing.Route{}, err
	}
	route := pricing.Route{DistanceMeters: leg.Meters, Duration: leg.Duration}

	if s.store != nil {
		if err := s.store.SetRoute(ctx, origin, dest, route, s.routeTTL); err != nil {
			s.log.Warn("route cache write failed", zap.Error(err))
		}
	}
	return route, nil
}

// Suggestions lists priority towns then major destinations whose name contains input.
func (s *Service) Suggestions(input string) []Suggestion {
	needle := strings.ToLower(strings.TrimSpace(input))
	out := make([]Suggestion, 0, MaxSuggestions)
	for _, a := range catalog.PriorityTowns {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			out = append(out, Suggestion{Name: a.Name, SearchTerm: a.Name + ", France", Priority: true})
		}
	}
	for _, a := range catalog.MajorDestinations {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			out = append(out, Suggestion{Name: a.Name, SearchTerm: a.Name, Priority: true})
		}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// InPriorityArea matches town and destination names in the address, then
// falls back to distance from the nearest priority town.
func (s *Service) InPriorityArea(loc types.Location) bool {
	addr := strings.ToLower(loc.Address)
	if addr != "" {
		for _, list := range [][]catalog.Area{catalog.PriorityTowns, catalog.MajorDestinations} {
			for _, a := range list {
				if strings.Contains(addr, strings.ToLower(a.Name)) {
					return true
				}
			}
		}
	}
	if loc.Coords != nil {
		_, ok := s.areas.Within(*loc.Coords)
		return ok
	}
	return false
}

// NearestTowns returns up to k priority towns closest to p.
func (s *Service) NearestTowns(p types.Point, k int) []NearbyArea {
	return s.areas.Nearest(p, k)
}

func (s *Service) PopularDestinations() []catalog.PopularDestination {
	out := make([]catalog.PopularDestination, len(catalog.PopularDestinations))
	copy(out, catalog.PopularDestinations)
	return out
}
