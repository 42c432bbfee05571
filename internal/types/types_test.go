package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFormatting(t *testing.T) {
	tests := []struct {
		m     Money
		fixed string
		short string
	}{
		{Money{Amount: 200, Currency: "EUR"}, "2.00", "2"},
		{Money{Amount: 263, Currency: "EUR"}, "2.63", "2.63"},
		{Money{Amount: 6575, Currency: "EUR"}, "65.75", "65.75"},
		{Money{Amount: 11835, Currency: "EUR"}, "118.35", "118.35"},
		{Money{Amount: 250, Currency: "EUR"}, "2.50", "2.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fixed, tt.m.Fixed())
		assert.Equal(t, tt.short, tt.m.Short())
	}
	assert.Equal(t, "30.00 EUR", Money{Amount: 3000, Currency: "EUR"}.String())
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(200), Cents(2.00))
	assert.Equal(t, int64(263), Cents(2.63))
	assert.Equal(t, int64(-150), Cents(-1.5))
}

func TestLocationWaypoint(t *testing.T) {
	withCoords := Location{Address: "Torcy", Coords: &Point{Lat: 48.85, Lng: 2.65}, PlaceID: "abc"}
	assert.Equal(t, "48.850000,2.650000", withCoords.Waypoint())

	withPlace := Location{Address: "Torcy", PlaceID: "abc"}
	assert.Equal(t, "place_id:abc", withPlace.Waypoint())

	plain := Location{Address: "  Gare de Chessy "}
	assert.Equal(t, "Gare de Chessy", plain.Waypoint())

	assert.True(t, Location{Address: "   "}.Empty())
	assert.False(t, plain.Empty())
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, string(a), 32)
	assert.NotEqual(t, a, b)
	assert.Len(t, a.Short(), 8)
}
