// README: Booking service; validates the form, re-quotes the trip, formats and hands it to delivery.
package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"taxibook/internal/catalog"
	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/pricing"
	"taxibook/internal/types"
)

// Quoter prices a trip. Implemented by *pricing.Service.
type Quoter interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (pricing.Quote, error)
	RateInfo(night bool) pricing.RateInfo
}

// Deliverer sends a rendered booking. Implemented by *delivery.Service.
type Deliverer interface {
	Deliver(ctx context.Context, env delivery.Envelope, opener delivery.Opener) delivery.Result
}

type Service struct {
	quoter    Quoter
	deliverer Deliverer
	format    Formatter
	log       *zap.Logger
	now       func() time.Time
}

func NewService(quoter Quoter, deliverer Deliverer, format Formatter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{quoter: quoter, deliverer: deliverer, format: format, log: log, now: time.Now}
}

// Prepare normalizes and validates the form, then prices the trip.
// Validation failures are returned as FieldErrors.
func (s *Service) Prepare(ctx context.Context, req Request) (Booking, error) {
	req = Normalize(req)
	if errs := Validate(req); errs != nil {
		return Booking{}, errs
	}

	q, err := s.quoter.Quote(ctx, req.Trip)
	if err != nil {
		return Booking{}, fmt.Errorf("quote trip: %w", err)
	}

	return Booking{
		Reference:  types.NewID(),
		Customer:   req.Customer,
		Passengers: req.Passengers,
		Luggage:    req.Luggage,
		Quote:      q,
		RatePeriod: s.quoter.RateInfo(q.IsNightRate).Period,
		Vehicle:    catalog.VehicleFor(req.Passengers),
		CreatedAt:  s.now(),
	}, nil
}

// Submit prepares the booking and delivers it through both channels.
// A booking that reached neither channel is still returned; callers check
// Delivery.Delivered().
func (s *Service) Submit(ctx context.Context, req Request, opener delivery.Opener) (Submission, error) {
	b, err := s.Prepare(ctx, req)
	if err != nil {
		return Submission{}, err
	}

	res := s.deliverer.Deliver(ctx, s.Envelope(b), opener)
	if !res.Delivered() {
		s.log.Error("booking not delivered",
			zap.String("reference", b.Reference.Short()),
			zap.NamedError("messaging", res.Messaging.Err),
			zap.NamedError("relay", res.Relay.Err),
		)
	}

	return Submission{Booking: b, Summary: s.format.Summary(b), Delivery: res}, nil
}

// Envelope renders b for transport. Field order is the relay's form order.
func (s *Service) Envelope(b Booking) delivery.Envelope {
	q := b.Quote
	msg := s.format.Message(b)
	subject := s.format.Subject(b)
	return delivery.Envelope{
		Reference: b.Reference.Short(),
		Subject:   subject,
		Message:   msg,
		Fields: []delivery.Field{
			{Name: "email", Value: b.Customer.Email},
			{Name: "subject", Value: subject},
			{Name: "message", Value: msg},
			{Name: "_replyto", Value: b.Customer.Email},
			{Name: "customer_name", Value: b.Customer.FullName()},
			{Name: "customer_phone", Value: b.Customer.FullPhone()},
			{Name: "departure", Value: q.Departure.Address},
			{Name: "destination", Value: q.Destination.Address},
			{Name: "trip_date", Value: q.PickupAt.Format(frDate)},
			{Name: "trip_time", Value: q.Time},
			{Name: "price", Value: q.Price.Fixed() + "€"},
			{Name: "passengers", Value: strconv.Itoa(b.Passengers)},
			{Name: "luggage", Value: strconv.Itoa(b.Luggage)},
		},
	}
}

func (s *Service) Receipt(ctx context.Context, req Request) (Booking, []byte, error) {
	b, err := s.Prepare(ctx, req)
	if err != nil {
		return Booking{}, nil, err
	}
	pdf, err := s.format.RenderReceipt(b)
	if err != nil {
		return Booking{}, nil, err
	}
	return b, pdf, nil
}
