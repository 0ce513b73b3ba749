// Package geodata holds the static geographic reference tables the
// generator and scorer look up: demand centers, infrastructure cities,
// urban centers, river basins and the coastal/desert anchors used by
// the wind and solar models. The tables are plain data so tests can
// substitute synthetic geographies.
package geodata

import (
	"github.com/paulmach/orb"

	"GeoH2-India/internal/domain/model"
)

// Site is a named reference point.
type Site struct {
	Name string
	Lat  float64
	Lon  float64
}

// Point returns the site in [lon, lat] order, implementing orb.Pointer
// so sites can be indexed in a quadtree.
func (s Site) Point() orb.Point {
	return orb.Point{s.Lon, s.Lat}
}

// BasinBox is a rectangular river-basin approximation with the water
// availability it implies. Bounds are exclusive on both ends.
type BasinBox struct {
	Name         string
	LatMin       float64
	LatMax       float64
	LonMin       float64
	LonMax       float64
	Availability model.WaterAvailability
}

// Contains reports whether (lat, lon) falls strictly inside the box.
func (b BasinBox) Contains(lat, lon float64) bool {
	return lat > b.LatMin && lat < b.LatMax && lon > b.LonMin && lon < b.LonMax
}

// Reference bundles every lookup table for one geography.
type Reference struct {
	// DemandCenters are the hydrogen demand hubs used for the
	// transport-cost nearest-distance lookup.
	DemandCenters []Site

	// InfrastructureCities score proximity to developed corridors.
	InfrastructureCities []Site

	// UrbanCenters mark the very-high population density zones.
	UrbanCenters []Site

	// Basins are checked in order; the first match wins.
	Basins []BasinBox

	// CoastalLatitudes and CoastalLongitudes anchor the wind model:
	// the minimum absolute difference to any of them is the coastal
	// distance in degrees.
	CoastalLatitudes  []float64
	CoastalLongitudes []float64

	// SolarAnchor is the northwest desert reference for the solar
	// model (distance in degree space).
	SolarAnchor Site
}

// DefaultIndia returns the reference tables for the India analysis.
func DefaultIndia() *Reference {
	return &Reference{
		DemandCenters: []Site{
			{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
			{Name: "Delhi", Lat: 28.7041, Lon: 77.1025},
			{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946},
			{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
			{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
		},
		InfrastructureCities: []Site{
			{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
			{Name: "Delhi", Lat: 28.7041, Lon: 77.1025},
			{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946},
			{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
			{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
			{Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867},
			{Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714},
			{Name: "Lucknow", Lat: 26.8467, Lon: 80.9462},
			{Name: "Dubai", Lat: 25.2048, Lon: 55.2708},
		},
		UrbanCenters: []Site{
			{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
			{Name: "Delhi", Lat: 28.7041, Lon: 77.1025},
			{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946},
			{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
			{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
		},
		Basins: []BasinBox{
			{Name: "Ganges", LatMin: 20, LatMax: 30, LonMin: 70, LonMax: 85, Availability: model.WaterHigh},
			{Name: "Western Ghats", LatMin: 10, LatMax: 20, LonMin: 70, LonMax: 80, Availability: model.WaterHigh},
			{Name: "Brahmaputra", LatMin: 20, LatMax: 30, LonMin: 85, LonMax: 95, Availability: model.WaterHigh},
			{Name: "Central India", LatMin: 15, LatMax: 25, LonMin: 75, LonMax: 85, Availability: model.WaterMedium},
		},
		CoastalLatitudes:  []float64{8.0, 22.0, 12.0},
		CoastalLongitudes: []float64{72.0, 80.0},
		SolarAnchor:       Site{Name: "Thar Desert", Lat: 28.0, Lon: 75.0},
	}
}

// IndiaGridParams are the default bounding box and resolution for the
// nationwide hexagon grid: 6N-37N, 68E-97E at 50 km.
const (
	IndiaLatMin       = 6.0
	IndiaLatMax       = 37.0
	IndiaLonMin       = 68.0
	IndiaLonMax       = 97.0
	IndiaResolutionKM = 50.0
)
