package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	quoteKm float64
	quoteAt string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a distance at a pickup time",
	Example: `  taxibook quote --km 25 --at "2024-03-15 22:30"
  taxibook quote --km 15`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Float64VarP(&quoteKm, "km", "k", 0, "Driving distance in km")
	quoteCmd.Flags().StringVarP(&quoteAt, "at", "a", "", `Pickup "YYYY-MM-DD HH:MM" (default now)`)
	_ = quoteCmd.MarkFlagRequired("km")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	svc, _, err := loadPricing(nil)
	if err != nil {
		return err
	}

	at := time.Now().In(svc.Location())
	if quoteAt != "" {
		date, clock, ok := splitPickup(quoteAt)
		if !ok {
			return fmt.Errorf("invalid --at %q, want \"YYYY-MM-DD HH:MM\"", quoteAt)
		}
		if at, err = svc.ParsePickup(date, clock); err != nil {
			return err
		}
	}

	fare := svc.Fare(quoteKm, at)
	info := svc.RateInfo(fare.Night)
	label := green("day")
	if fare.Night {
		label = yellow("night")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", bold("Pickup"), at.Format("02/01/2006 15:04"))
	fmt.Fprintf(out, "%s  %.1f km\n", bold("Distance"), fare.DistanceKm)
	fmt.Fprintf(out, "%s  %s (%s) %s/km\n", bold("Rate"), label, info.Period, fare.Rate)
	fmt.Fprintf(out, "%s  %s\n", bold("Price"), cyan(fare.Price.String()))
	return nil
}

func splitPickup(s string) (date, clock string, ok bool) {
	var d, c string
	if n, _ := fmt.Sscanf(s, "%s %s", &d, &c); n != 2 {
		return "", "", false
	}
	return d, c, true
}
