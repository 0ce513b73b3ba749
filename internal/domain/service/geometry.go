package service

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"GeoH2-India/internal/domain/model"
)

// hexagonVertices is the number of distinct corners; the stored ring
// repeats the first corner, giving hexagonRingLen points.
const (
	hexagonVertices = 6
	hexagonRingLen  = hexagonVertices + 1
)

// HexagonRing builds the closed hexagon ring around a center point.
// Vertices are stepped evenly from 0 to 2π; the longitude offset is
// divided by cos(lat) to compensate for the shrinking degree width
// away from the equator. Coordinates are [lon, lat].
func HexagonRing(lat, lon, radiusDeg float64) orb.Ring {
	ring := make(orb.Ring, 0, hexagonRingLen)
	latRad := lat * math.Pi / 180.0
	for i := 0; i < hexagonVertices; i++ {
		angle := 2 * math.Pi / hexagonVertices * float64(i)
		vLat := lat + radiusDeg*math.Cos(angle)
		vLon := lon + radiusDeg*math.Sin(angle)/math.Cos(latRad)
		ring = append(ring, orb.Point{vLon, vLat})
	}
	ring = append(ring, ring[0])
	return ring
}

// ValidateHexagon checks that a ring is a simple closed hexagon with
// non-zero area. Returns a *model.GeometryError describing the defect.
func ValidateHexagon(lat, lon float64, ring orb.Ring) error {
	if len(ring) != hexagonRingLen {
		return &model.GeometryError{Lat: lat, Lon: lon, Reason: "wrong vertex count"}
	}
	if !ring.Closed() {
		return &model.GeometryError{Lat: lat, Lon: lon, Reason: "ring not closed"}
	}
	for _, p := range ring {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			return &model.GeometryError{Lat: lat, Lon: lon, Reason: "non-finite vertex"}
		}
	}
	if math.Abs(planar.Area(orb.Polygon{ring})) < 1e-12 {
		return &model.GeometryError{Lat: lat, Lon: lon, Reason: "degenerate area"}
	}
	if ringSelfIntersects(ring) {
		return &model.GeometryError{Lat: lat, Lon: lon, Reason: "self-intersecting"}
	}
	return nil
}

// ringSelfIntersects tests every pair of non-adjacent edges for a
// proper crossing. The closing edge (last to first) is adjacent to the
// first edge.
func ringSelfIntersects(ring orb.Ring) bool {
	n := len(ring) - 1 // edges
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsCross(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d orb.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(o, a, p orb.Point) float64 {
	return (a[0]-o[0])*(p[1]-o[1]) - (a[1]-o[1])*(p[0]-o[0])
}
