package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taxibook/internal/catalog"
	"taxibook/internal/modules/location"
	"taxibook/internal/types"
)

var (
	areasLat, areasLng float64
	areasNearest       int
	areasRadiusKm      float64
	fleetPassengers    int
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List service areas, or the towns nearest a coordinate",
	Example: `  taxibook areas
  taxibook areas --lat 48.85 --lng 2.65 -n 3`,
	RunE: runAreas,
}

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "List vehicles, or the one assigned to a party size",
	RunE:  runFleet,
}

func init() {
	areasCmd.Flags().Float64Var(&areasLat, "lat", 0, "Latitude")
	areasCmd.Flags().Float64Var(&areasLng, "lng", 0, "Longitude")
	areasCmd.Flags().IntVarP(&areasNearest, "nearest", "n", 3, "Number of towns to show with --lat/--lng")
	areasCmd.Flags().Float64VarP(&areasRadiusKm, "radius", "r", 3, "Priority radius in km")

	fleetCmd.Flags().IntVarP(&fleetPassengers, "passengers", "p", 0, "Party size")
}

func runAreas(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
		fmt.Fprintln(out, bold("Priority towns"))
		for _, a := range catalog.PriorityTowns {
			fmt.Fprintf(out, "  %-28s %s\n", a.Name, a.Position)
		}
		fmt.Fprintln(out, bold("Major destinations"))
		for _, a := range catalog.MajorDestinations {
			fmt.Fprintf(out, "  %-28s %s\n", a.Name, a.Position)
		}
		return nil
	}

	idx := location.NewAreaIndex(catalog.PriorityTowns, areasRadiusKm)
	p := types.Point{Lat: areasLat, Lng: areasLng}
	if area, ok := idx.Within(p); ok {
		fmt.Fprintf(out, "%s inside the priority area (%s, %.2f km)\n", green("✓"), area.Name, area.DistanceKm)
	} else {
		fmt.Fprintf(out, "%s outside the priority area\n", yellow("!"))
	}
	for _, n := range idx.Nearest(p, areasNearest) {
		fmt.Fprintf(out, "  %-28s %6.2f km\n", n.Name, n.DistanceKm)
	}
	return nil
}

func runFleet(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if fleetPassengers > 0 {
		v := catalog.VehicleFor(fleetPassengers)
		fmt.Fprintf(out, "%d passenger(s): %s (%d seats)\n", fleetPassengers, bold(v.Model), v.Seats)
		return nil
	}
	for _, v := range catalog.Fleet {
		fmt.Fprintf(out, "%s  %d seats  %s\n", bold(v.Model), v.Seats, v.Description)
		for _, f := range v.Features {
			fmt.Fprintf(out, "    - %s\n", f)
		}
	}
	return nil
}

func writeFile(path string, b []byte) error {
	return os.WriteFile(path, b, 0o644)
}
