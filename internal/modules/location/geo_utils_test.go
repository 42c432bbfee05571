package location

import (
	"math"
	"testing"

	"taxibook/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 48.8584, Lng: 2.6331},
			b:         types.Point{Lat: 48.8584, Lng: 2.6331},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Torcy to Lognes (~2.3km)",
			a:         types.Point{Lat: 48.8502, Lng: 2.6508},
			b:         types.Point{Lat: 48.8363, Lng: 2.6283},
			wantKm:    2.3,
			tolerance: 0.6,
		},
		{
			name:      "Paris to CDG (~22km)",
			a:         types.Point{Lat: 48.8566, Lng: 2.3522},
			b:         types.Point{Lat: 49.0097, Lng: 2.5479},
			wantKm:    22.2,
			tolerance: 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 48.0, Lng: 2.0}
	b := types.Point{Lat: 49.0, Lng: 3.0}
	if d1, d2 := haversineKm(a, b), haversineKm(b, a); math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestSortByDistance(t *testing.T) {
	items := []NearbyArea{{DistanceKm: 5}, {DistanceKm: 1}, {DistanceKm: 3}}
	sortByDistance(items, func(a NearbyArea) float64 { return a.DistanceKm })
	if items[0].DistanceKm != 1 || items[1].DistanceKm != 3 || items[2].DistanceKm != 5 {
		t.Errorf("unexpected sort order: %v", items)
	}
}

func TestSortByDistance_Empty(t *testing.T) {
	var items []NearbyArea
	sortByDistance(items, func(a NearbyArea) float64 { return a.DistanceKm })
}
