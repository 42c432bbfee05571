// README: Booking form, validated booking and field-level validation errors.
package booking

import (
	"sort"
	"strings"
	"time"

	"taxibook/internal/catalog"
	"taxibook/internal/i18n"
	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/pricing"
	"taxibook/internal/types"
)

const (
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldPassengers = "passengers"
	FieldLuggage    = "luggage"
)

const DefaultCountryCode = "+33"

// FieldErrors maps a form field to the message key explaining what is wrong.
type FieldErrors map[string]i18n.Key

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid booking form: " + strings.Join(fields, ", ")
}

func (e FieldErrors) Localize(lang i18n.Language) map[string]string {
	out := make(map[string]string, len(e))
	for f, k := range e {
		out[f] = i18n.T(lang, k, nil)
	}
	return out
}

type Customer struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c Customer) FullPhone() string {
	return c.CountryCode + " " + c.Phone
}

// Request is the booking form as submitted, before normalization.
type Request struct {
	Customer
	Passengers int                  `json:"passengers"`
	Luggage    int                  `json:"luggage"`
	Trip       pricing.QuoteRequest `json:"trip"`
}

type Booking struct {
	Reference  types.ID        `json:"reference"`
	Customer   Customer        `json:"customer"`
	Passengers int             `json:"passengers"`
	Luggage    int             `json:"luggage"`
	Quote      pricing.Quote   `json:"quote"`
	RatePeriod string          `json:"rate_period"`
	Vehicle    catalog.Vehicle `json:"vehicle"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Submission is what the customer gets back after delivery.
type Submission struct {
	Booking  Booking         `json:"booking"`
	Summary  string          `json:"summary"`
	Delivery delivery.Result `json:"delivery"`
}
