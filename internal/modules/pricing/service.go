// README: Pricing service; rate selection, fare computation and trip quotes.
package pricing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"taxibook/internal/types"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Router reports the driving route between two locations.
type Router interface {
	Route(ctx context.Context, from, to types.Location) (Route, error)
}

type Service struct {
	store  *Store
	rates  Rates
	router Router
	loc    *time.Location
}

func NewService(store *Store, rates Rates, router Router, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, rates: rates, router: router, loc: loc}
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// IsNight reports whether hour falls outside [DayStart, DayEnd).
func (s *Service) IsNight(hour int) bool {
	return hour < s.rates.DayStart || hour >= s.rates.DayEnd
}

func (s *Service) RateInfo(night bool) RateInfo {
	if night {
		return RateInfo{Rate: s.rates.NightPerKm, Night: true, Period: s.rates.NightPeriod()}
	}
	return RateInfo{Rate: s.rates.DayPerKm, Night: false, Period: s.rates.DayPeriod()}
}

// Fare prices distanceKm at the rate in force at the hour of at.
// Distances are not validated; negative inputs yield negative prices.
func (s *Service) Fare(distanceKm float64, at time.Time) Fare {
	info := s.RateInfo(s.IsNight(at.Hour()))
	cents := math.Round(distanceKm * float64(info.Rate.Amount))
	return Fare{
		DistanceKm: distanceKm,
		Rate:       info.Rate,
		Night:      info.Night,
		Price:      types.Money{Amount: int64(cents), Currency: info.Rate.Currency},
	}
}

// ParsePickup interprets date (YYYY-MM-DD) and clock (HH:MM) in the service timezone.
func (s *Service) ParsePickup(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: pickup %q %q", ErrInvalidTrip, date, clock)
	}
	return t, nil
}

func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	if req.Departure.Empty() || req.Destination.Empty() {
		return Quote{}, fmt.Errorf("%w: departure and destination are required", ErrInvalidTrip)
	}
	pickup, err := s.ParsePickup(req.Date, req.Time)
	if err != nil {
		return Quote{}, err
	}
	if s.router == nil {
		return Quote{}, fmt.Errorf("%w: no router configured", ErrRouteUnavailable)
	}

	route, err := s.router.Route(ctx, req.Departure, req.Destination)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	km := float64(route.DistanceMeters) / 1000
	fare := s.Fare(km, pickup)
	return Quote{
		Departure:   req.Departure,
		Destination: req.Destination,
		Date:        pickup.Format(dateLayout),
		Time:        pickup.Format(timeLayout),
		DistanceKm:  km,
		DurationMin: int(math.Round(route.Duration.Minutes())),
		Rate:        fare.Rate,
		Price:       fare.Price,
		IsNightRate: fare.Night,
		PickupAt:    pickup,
	}, nil
}
