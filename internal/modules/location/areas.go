// README: R-tree index over the priority towns for "is this pickup in our area" checks.
package location

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"taxibook/internal/catalog"
	"taxibook/internal/types"
)

// refLat scales longitude so planar distances in the tree roughly match ground distances.
const refLat = 48.85

type areaEntry struct {
	area catalog.Area
	rect rtreego.Rect
}

func (e *areaEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NearbyArea is a town with its great-circle distance from a query point.
type NearbyArea struct {
	catalog.Area
	DistanceKm float64 `json:"distance_km"`
}

type AreaIndex struct {
	tree     *rtreego.Rtree
	radiusKm float64
}

func NewAreaIndex(areas []catalog.Area, radiusKm float64) *AreaIndex {
	objs := make([]rtreego.Spatial, 0, len(areas))
	for _, a := range areas {
		objs = append(objs, &areaEntry{area: a, rect: project(a.Position).ToRect(0.0001)})
	}
	return &AreaIndex{tree: rtreego.NewTree(2, 2, 8, objs...), radiusKm: radiusKm}
}

func project(p types.Point) rtreego.Point {
	return rtreego.Point{p.Lng * math.Cos(degreesToRadians(refLat)), p.Lat}
}

// Nearest returns up to k towns closest to p, closest first.
func (ix *AreaIndex) Nearest(p types.Point, k int) []NearbyArea {
	if ix.tree.Size() == 0 || k <= 0 {
		return nil
	}
	hits := ix.tree.NearestNeighbors(k, project(p))
	out := make([]NearbyArea, 0, len(hits))
	for _, h := range hits {
		e, ok := h.(*areaEntry)
		if !ok {
			continue
		}
		out = append(out, NearbyArea{Area: e.area, DistanceKm: haversineKm(p, e.area.Position)})
	}
	sortByDistance(out, func(a NearbyArea) float64 { return a.DistanceKm })
	return out
}

// Within reports the closest town when p lies inside the configured radius of it.
func (ix *AreaIndex) Within(p types.Point) (NearbyArea, bool) {
	near := ix.Nearest(p, 1)
	if len(near) == 0 || near[0].DistanceKm > ix.radiusKm {
		return NearbyArea{}, false
	}
	return near[0], true
}
