package booking

import (
	"fmt"
	"strings"
)

const frDate = "02/01/2006"

// Formatter renders a booking as the French text sent to the driver.
type Formatter struct {
	Company string
	Website string
}

func DefaultFormatter() Formatter {
	return Formatter{Company: "Taxi Marne-la-Vallée", Website: "www.taximarnelavallee.com"}
}

func rateLabel(b Booking) string {
	if b.Quote.IsNightRate {
		return "Nuit (" + b.RatePeriod + ")"
	}
	return "Jour (" + b.RatePeriod + ")"
}

// Message is deterministic: the same booking always renders the same bytes.
// Free-text fields are copied verbatim.
func (f Formatter) Message(b Booking) string {
	q := b.Quote
	var sb strings.Builder

	fmt.Fprintf(&sb, "🚖 NOUVELLE RÉSERVATION %s\n\n", strings.ToUpper(f.Company))

	sb.WriteString("👤 CLIENT:\n")
	fmt.Fprintf(&sb, "• Nom: %s\n", b.Customer.FullName())
	fmt.Fprintf(&sb, "• Email: %s\n", b.Customer.Email)
	fmt.Fprintf(&sb, "• Téléphone: %s\n\n", b.Customer.FullPhone())

	sb.WriteString("🗺️ TRAJET:\n")
	fmt.Fprintf(&sb, "• Départ: %s\n", q.Departure.Address)
	fmt.Fprintf(&sb, "• Arrivée: %s\n", q.Destination.Address)
	fmt.Fprintf(&sb, "• Date: %s\n", q.PickupAt.Format(frDate))
	fmt.Fprintf(&sb, "• Heure: %s\n\n", q.Time)

	sb.WriteString("💰 TARIF:\n")
	fmt.Fprintf(&sb, "• Distance: %.1f km\n", q.DistanceKm)
	fmt.Fprintf(&sb, "• Tarif %s: %s€/km\n", rateLabel(b), q.Rate.Short())
	fmt.Fprintf(&sb, "• Prix total: %s€\n\n", q.Price.Fixed())

	sb.WriteString("👥 DÉTAILS:\n")
	fmt.Fprintf(&sb, "• Passagers: %d\n", b.Passengers)
	fmt.Fprintf(&sb, "• Bagages: %d\n\n", b.Luggage)

	fmt.Fprintf(&sb, "📱 Réservation effectuée via l'application %s\n", f.Company)
	fmt.Fprintf(&sb, "🌐 %s\n\n", f.Website)
	sb.WriteString("Merci de confirmer la disponibilité au client.")

	return sb.String()
}

func (f Formatter) Subject(b Booking) string {
	return fmt.Sprintf("🚖 Réservation Taxi %s %s - %s", b.Quote.PickupAt.Format(frDate), b.Quote.Time, b.Customer.FullName())
}

// Summary is the three-line recap shown to the customer.
func (f Formatter) Summary(b Booking) string {
	q := b.Quote
	return fmt.Sprintf("%s → %s\n%s à %s\n%.1f km - %s€",
		q.Departure.Address, q.Destination.Address,
		q.PickupAt.Format(frDate), q.Time,
		q.DistanceKm, q.Price.Fixed())
}

// FormatMessage renders b with the default company footer.
func FormatMessage(b Booking) string {
	return DefaultFormatter().Message(b)
}

func FormatSubject(b Booking) string {
	return DefaultFormatter().Subject(b)
}
