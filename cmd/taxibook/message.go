package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"taxibook/internal/i18n"
	"taxibook/internal/modules/booking"
	"taxibook/internal/modules/delivery"
	"taxibook/internal/modules/pricing"
	"taxibook/internal/types"
)

var (
	msgForm booking.Request
	msgKm   float64
	msgPDF  string
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Render the driver message and delivery links for a booking",
	Example: `  taxibook message --first Jean --last Dupont --email jean@example.fr --phone "06 12 34 56 78" \
    --from "Gare de Torcy" --to "Aéroport CDG" --date 2024-03-15 --time 22:30 --km 25`,
	RunE: runMessage,
}

func init() {
	f := messageCmd.Flags()
	f.StringVar(&msgForm.FirstName, "first", "", "Customer first name")
	f.StringVar(&msgForm.LastName, "last", "", "Customer last name")
	f.StringVar(&msgForm.Email, "email", "", "Customer email")
	f.StringVar(&msgForm.Phone, "phone", "", "Customer phone")
	f.StringVar(&msgForm.CountryCode, "country-code", booking.DefaultCountryCode, "Phone country code")
	f.IntVar(&msgForm.Passengers, "passengers", 1, "Passengers")
	f.IntVar(&msgForm.Luggage, "luggage", 0, "Pieces of luggage")
	f.StringVar(&msgForm.Trip.Departure.Address, "from", "", "Departure address")
	f.StringVar(&msgForm.Trip.Destination.Address, "to", "", "Destination address")
	f.StringVar(&msgForm.Trip.Date, "date", "", "Pickup date YYYY-MM-DD")
	f.StringVar(&msgForm.Trip.Time, "time", "", "Pickup time HH:MM")
	f.Float64Var(&msgKm, "km", 0, "Driving distance in km")
	f.StringVar(&msgPDF, "pdf", "", "Also write the PDF receipt to this file")
}

// fixedRoute answers every lookup with the distance given on the command line.
type fixedRoute float64

func (r fixedRoute) Route(context.Context, types.Location, types.Location) (pricing.Route, error) {
	return pricing.Route{DistanceMeters: int(math.Round(float64(r) * 1000))}, nil
}

// noDelivery keeps the booking service offline; the CLI only prints.
type noDelivery struct{}

func (noDelivery) Deliver(context.Context, delivery.Envelope, delivery.Opener) delivery.Result {
	return delivery.Result{}
}

func runMessage(cmd *cobra.Command, _ []string) error {
	pricingSvc, cfg, err := loadPricing(fixedRoute(msgKm))
	if err != nil {
		return err
	}
	f := booking.Formatter{Company: cfg.Contact.CompanyName, Website: cfg.Contact.Website}
	svc := booking.NewService(pricingSvc, noDelivery{}, f, nil)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	b, err := svc.Prepare(ctx, msgForm)
	if err != nil {
		var fe booking.FieldErrors
		if errors.As(err, &fe) {
			for field, msg := range fe.Localize(i18n.Default) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", red("✗"), field, msg)
			}
		}
		return err
	}

	env := svc.Envelope(b)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n\n", bold("Subject:"), env.Subject)
	fmt.Fprintln(out, env.Message)
	fmt.Fprintf(out, "\n%s\n%s\n\n", bold("Summary:"), f.Summary(b))
	fmt.Fprintln(out, bold("Links:"))
	fmt.Fprintf(out, "  %s\n", cyan(delivery.MessagingLink(cfg.Contact.WhatsApp, env.Message)))
	fmt.Fprintf(out, "  %s\n", cyan(delivery.WebMessagingLink(cfg.Contact.WhatsApp, env.Message)))
	fmt.Fprintf(out, "  %s\n", cyan(delivery.MailLink(cfg.Contact.Email, env.Subject, env.Message)))
	fmt.Fprintf(out, "  %s\n", cyan(delivery.PhoneLink(cfg.Contact.WhatsApp)))

	if msgPDF != "" {
		pdf, err := f.RenderReceipt(b)
		if err != nil {
			return err
		}
		if err := writeFile(msgPDF, pdf); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s %s\n", green("receipt written to"), msgPDF)
	}
	return nil
}
