// README: Tariff and quote definitions for per-kilometre day/night pricing.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"taxibook/internal/config"
	"taxibook/internal/types"
)

var (
	ErrInvalidTrip      = errors.New("invalid trip")
	ErrRouteUnavailable = errors.New("route unavailable")
)

// Rates is the tariff: two per-km rates and the day window [DayStart, DayEnd).
type Rates struct {
	DayPerKm   types.Money
	NightPerKm types.Money
	DayStart   int
	DayEnd     int
}

func DefaultRates() Rates {
	return Rates{
		DayPerKm:   types.Money{Amount: 200, Currency: "EUR"},
		NightPerKm: types.Money{Amount: 263, Currency: "EUR"},
		DayStart:   7,
		DayEnd:     19,
	}
}

func RatesFromConfig(c config.PricingConfig) Rates {
	return Rates{
		DayPerKm:   types.Money{Amount: types.Cents(c.DayRate), Currency: c.Currency},
		NightPerKm: types.Money{Amount: types.Cents(c.NightRate), Currency: c.Currency},
		DayStart:   c.DayStart,
		DayEnd:     c.DayEnd,
	}
}

// DayPeriod is the display label of the day window, e.g. "7h-19h".
func (r Rates) DayPeriod() string {
	return fmt.Sprintf("%dh-%dh", r.DayStart, r.DayEnd)
}

// NightPeriod is the display label of the night window, e.g. "19h-7h".
func (r Rates) NightPeriod() string {
	return fmt.Sprintf("%dh-%dh", r.DayEnd, r.DayStart)
}

type RateInfo struct {
	Rate   types.Money `json:"rate"`
	Night  bool        `json:"is_night"`
	Period string      `json:"period"`
}

type Fare struct {
	DistanceKm float64     `json:"distance_km"`
	Rate       types.Money `json:"rate"`
	Night      bool        `json:"is_night_rate"`
	Price      types.Money `json:"price"`
}

// Route is what the mapping collaborator reports between two locations.
type Route struct {
	DistanceMeters int           `json:"distance_meters"`
	Duration       time.Duration `json:"duration"`
}

type QuoteRequest struct {
	Departure   types.Location `json:"departure"`
	Destination types.Location `json:"destination"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
}

// Quote is the priced trip shown on the quote screen and carried into the booking.
type Quote struct {
	Departure   types.Location `json:"departure"`
	Destination types.Location `json:"destination"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	DistanceKm  float64        `json:"distance_km"`
	DurationMin int            `json:"duration_min"`
	Rate        types.Money    `json:"rate"`
	Price       types.Money    `json:"price"`
	IsNightRate bool           `json:"is_night_rate"`
	// PickupAt is Date+Time in the service timezone.
	PickupAt time.Time `json:"pickup_at"`
}
