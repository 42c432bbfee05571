// README: Identifiers and geographic value objects shared by modules.
package types

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type ID string

func NewID() ID {
	return ID(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Short is the human-facing booking reference (first 8 characters, upper case).
func (id ID) Short() string {
	s := string(id)
	if len(s) > 8 {
		s = s[:8]
	}
	return strings.ToUpper(s)
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) String() string {
	return strconv.FormatFloat(p.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lng, 'f', 6, 64)
}

// Location is a free-text address optionally resolved to coordinates and a place id.
type Location struct {
	Address string `json:"address"`
	Coords  *Point `json:"coords,omitempty"`
	PlaceID string `json:"place_id,omitempty"`
}

func (l Location) Empty() bool {
	return strings.TrimSpace(l.Address) == "" && l.Coords == nil && l.PlaceID == ""
}

// Waypoint is the routing query for the location: coordinates when known,
// otherwise the place id, otherwise the raw address.
func (l Location) Waypoint() string {
	switch {
	case l.Coords != nil:
		return l.Coords.String()
	case l.PlaceID != "":
		return "place_id:" + l.PlaceID
	default:
		return strings.TrimSpace(l.Address)
	}
}
