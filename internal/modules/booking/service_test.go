package booking

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/pricing"
	"taxibook/internal/types"
)

type stubRouter struct {
	meters int
	err    error
}

func (r stubRouter) Route(context.Context, types.Location, types.Location) (pricing.Route, error) {
	return pricing.Route{DistanceMeters: r.meters, Duration: 30 * time.Minute}, r.err
}

type recordingDeliverer struct {
	env    delivery.Envelope
	result delivery.Result
}

func (d *recordingDeliverer) Deliver(_ context.Context, env delivery.Envelope, _ delivery.Opener) delivery.Result {
	d.env = env
	return d.result
}

func nightRequest() Request {
	r := validRequest()
	r.Trip = pricing.QuoteRequest{
		Departure:   types.Location{Address: "Gare de Torcy, 77200 Torcy"},
		Destination: types.Location{Address: "Aéroport CDG, Roissy"},
		Date:        "2024-03-15",
		Time:        "22:30",
	}
	return r
}

func newTestService(router stubRouter, d Deliverer) *Service {
	quoter := pricing.NewService(nil, pricing.DefaultRates(), router, time.UTC)
	s := NewService(quoter, d, DefaultFormatter(), nil)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func testBooking(t *testing.T) Booking {
	t.Helper()
	b, err := newTestService(stubRouter{meters: 25000}, &recordingDeliverer{}).Prepare(context.Background(), nightRequest())
	require.NoError(t, err)
	return b
}

func TestService_Prepare(t *testing.T) {
	b := testBooking(t)

	assert.Len(t, string(b.Reference), 32)
	assert.Equal(t, int64(6575), b.Quote.Price.Amount)
	assert.True(t, b.Quote.IsNightRate)
	assert.Equal(t, "19h-7h", b.RatePeriod)
	assert.Equal(t, "Peugeot 508 Hybride", b.Vehicle.Model)
}

func TestService_PrepareValidationFirst(t *testing.T) {
	r := nightRequest()
	r.Email = "nope"
	s := newTestService(stubRouter{err: errors.New("must not be called")}, &recordingDeliverer{})

	_, err := s.Prepare(context.Background(), r)

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, FieldEmail)
}

func TestService_PrepareRouteFailure(t *testing.T) {
	s := newTestService(stubRouter{err: errors.New("timeout")}, &recordingDeliverer{})

	_, err := s.Prepare(context.Background(), nightRequest())
	assert.ErrorIs(t, err, pricing.ErrRouteUnavailable)
}

func TestFormatter_Message(t *testing.T) {
	b := testBooking(t)

	want := "🚖 NOUVELLE RÉSERVATION TAXI MARNE-LA-VALLÉE\n\n" +
		"👤 CLIENT:\n" +
		"• Nom: Jean Dupont\n" +
		"• Email: jean.dupont@example.fr\n" +
		"• Téléphone: +33 06 12 34 56 78\n\n" +
		"🗺️ TRAJET:\n" +
		"• Départ: Gare de Torcy, 77200 Torcy\n" +
		"• Arrivée: Aéroport CDG, Roissy\n" +
		"• Date: 15/03/2024\n" +
		"• Heure: 22:30\n\n" +
		"💰 TARIF:\n" +
		"• Distance: 25.0 km\n" +
		"• Tarif Nuit (19h-7h): 2.63€/km\n" +
		"• Prix total: 65.75€\n\n" +
		"👥 DÉTAILS:\n" +
		"• Passagers: 2\n" +
		"• Bagages: 1\n\n" +
		"📱 Réservation effectuée via l'application Taxi Marne-la-Vallée\n" +
		"🌐 www.taximarnelavallee.com\n\n" +
		"Merci de confirmer la disponibilité au client."

	f := DefaultFormatter()
	assert.Equal(t, want, f.Message(b))
	assert.Equal(t, f.Message(b), f.Message(b))
	assert.Equal(t, "🚖 Réservation Taxi 15/03/2024 22:30 - Jean Dupont", f.Subject(b))
	assert.Equal(t, "Gare de Torcy, 77200 Torcy → Aéroport CDG, Roissy\n15/03/2024 à 22:30\n25.0 km - 65.75€", f.Summary(b))
}

func TestFormatter_DayRateLabel(t *testing.T) {
	b := testBooking(t)
	b.Quote.IsNightRate = false
	b.Quote.Rate = types.Money{Amount: 200, Currency: "EUR"}
	b.RatePeriod = "7h-19h"

	assert.Contains(t, FormatMessage(b), "• Tarif Jour (7h-19h): 2€/km\n")
}

func TestService_Envelope(t *testing.T) {
	s := newTestService(stubRouter{meters: 25000}, &recordingDeliverer{})
	b := testBooking(t)

	env := s.Envelope(b)

	names := make([]string, 0, len(env.Fields))
	values := map[string]string{}
	for _, f := range env.Fields {
		names = append(names, f.Name)
		values[f.Name] = f.Value
	}
	assert.Equal(t, []string{
		"email", "subject", "message", "_replyto", "customer_name", "customer_phone",
		"departure", "destination", "trip_date", "trip_time", "price", "passengers", "luggage",
	}, names)
	assert.Equal(t, "65.75€", values["price"])
	assert.Equal(t, "15/03/2024", values["trip_date"])
	assert.Equal(t, "Jean Dupont", values["customer_name"])
	assert.Equal(t, env.Message, values["message"])
	assert.Equal(t, b.Reference.Short(), env.Reference)
}

func TestService_Submit(t *testing.T) {
	d := &recordingDeliverer{result: delivery.Result{
		Messaging: delivery.ChannelResult{Outcome: delivery.Fallback},
		Relay:     delivery.ChannelResult{Outcome: delivery.Primary},
	}}
	s := newTestService(stubRouter{meters: 25000}, d)

	sub, err := s.Submit(context.Background(), nightRequest(), delivery.NewLinkCollector())
	require.NoError(t, err)

	assert.True(t, sub.Delivery.Delivered())
	assert.Equal(t, s.Envelope(sub.Booking).Message, d.env.Message)
	assert.Contains(t, sub.Summary, "65.75€")
}

func TestService_SubmitNothingDelivered(t *testing.T) {
	s := newTestService(stubRouter{meters: 25000}, &recordingDeliverer{})

	sub, err := s.Submit(context.Background(), nightRequest(), delivery.NewLinkCollector())
	require.NoError(t, err)
	assert.False(t, sub.Delivery.Delivered())
}

func TestService_Receipt(t *testing.T) {
	s := newTestService(stubRouter{meters: 25000}, &recordingDeliverer{})

	b, pdf, err := s.Receipt(context.Background(), nightRequest())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.NotEmpty(t, b.Reference)
}
