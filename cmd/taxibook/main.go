// README: Operator CLI; fares, driver messages, service areas, fleet and smoke checks against a running API.
package main

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taxibook/internal/config"
	"taxibook/internal/modules/pricing"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "taxibook",
	Short: "Taxi Marne-la-Vallée booking toolkit",
	Long:  `Compute fares, render driver messages and check a running booking API.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		if noColor {
			color.NoColor = true
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(quoteCmd, messageCmd, areasCmd, fleetCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadPricing builds a pricing service from env config; router may be nil.
func loadPricing(router pricing.Router) (*pricing.Service, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	tz, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load timezone: %w", err)
	}
	return pricing.NewService(nil, pricing.RatesFromConfig(cfg.Pricing), router, tz), cfg, nil
}
