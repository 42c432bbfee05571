package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleFor(t *testing.T) {
	tests := []struct {
		passengers int
		want       string
	}{
		{1, "Peugeot 508 Hybride"},
		{4, "Peugeot 508 Hybride"},
		{5, "Mercedes Classe V"},
		{7, "Mercedes Classe V"},
		{12, "Mercedes Classe V"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VehicleFor(tt.passengers).Model, "passengers=%d", tt.passengers)
	}
}

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, PriorityTowns, 21)
	assert.Len(t, MajorDestinations, 4)
	assert.Len(t, PopularDestinations, 10)
}

func TestAreasAreInIleDeFrance(t *testing.T) {
	for _, a := range append(append([]Area{}, PriorityTowns...), MajorDestinations...) {
		assert.InDelta(t, 48.85, a.Position.Lat, 0.3, a.Name)
		assert.InDelta(t, 2.6, a.Position.Lng, 0.5, a.Name)
	}
}
