package booking

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// RenderReceipt builds a one-page A4 PDF with the same facts as the driver message.
func (f Formatter) RenderReceipt(b Booking) ([]byte, error) {
	q := b.Quote

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Réservation "+b.Reference.Short()), false)
	pdf.SetAuthor(tr(f.Company), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(f.Company))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr("Référence: "+b.Reference.Short()))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Créée le: "+b.CreatedAt.Format("02/01/2006 15:04")))
	pdf.Ln(10)

	section := func(title string, lines ...string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.MultiCell(0, 6, tr(l), "", "L", false)
		}
		pdf.Ln(4)
	}

	rate := "Jour"
	if q.IsNightRate {
		rate = "Nuit"
	}

	section("Client",
		"Nom: "+b.Customer.FullName(),
		"Email: "+b.Customer.Email,
		"Téléphone: "+b.Customer.FullPhone(),
	)
	section("Trajet",
		"Départ: "+q.Departure.Address,
		"Arrivée: "+q.Destination.Address,
		"Date: "+q.PickupAt.Format(frDate),
		"Heure: "+q.Time,
	)
	section("Tarif",
		fmt.Sprintf("Distance: %.1f km", q.DistanceKm),
		fmt.Sprintf("Tarif %s (%s): %s EUR/km", rate, b.RatePeriod, q.Rate.Short()),
		fmt.Sprintf("Prix total: %s EUR", q.Price.Fixed()),
	)
	section("Détails",
		fmt.Sprintf("Passagers: %d", b.Passengers),
		fmt.Sprintf("Bagages: %d", b.Luggage),
		"Véhicule: "+b.Vehicle.Model,
	)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(f.Website), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func RenderReceipt(b Booking) ([]byte, error) {
	return DefaultFormatter().RenderReceipt(b)
}
