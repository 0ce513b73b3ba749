package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"GeoH2-India/internal/domain/geodata"
	"GeoH2-India/internal/domain/model"
)

func newTestCalculator() *AttributeCalculator {
	return NewAttributeCalculator(geodata.DefaultIndia())
}

func TestWindPotential(t *testing.T) {
	attrs := newTestCalculator()

	tests := []struct {
		name     string
		lat, lon float64
		want     float64
	}{
		// |6-8| = 2.0, the closest anchor, puts the point in the
		// moderate coastal band; no monsoon or terrain uplift.
		{"southwest corner", 6.0, 68.0, 5.5},
		// 0.5° off the southern-tip latitude: high coastal winds.
		{"coastal south", 8.5, 70.0, 6.5},
		// min anchor distance exactly 5.0: inland base with terrain.
		{"inland with terrain", 27.0, 85.0, 4.4},
		// all anchors at least 5° away, no band uplifts.
		{"remote inland", 30.5, 85.0, 4.0},
		// 1° off the Mumbai-latitude anchor: high coastal base with
		// both monsoon and terrain factors, 6.5 * 1.2 * 1.1.
		{"monsoon and terrain", 21.0, 69.0, 8.58},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, attrs.WindPotential(tt.lat, tt.lon), 1e-9)
		})
	}
}

func TestSolarPotential(t *testing.T) {
	attrs := newTestCalculator()

	tests := []struct {
		name     string
		lat, lon float64
		want     float64
	}{
		// On the desert anchor: 6.2 * 0.94 * 1.1.
		{"desert anchor", 28.0, 75.0, 6.41},
		// ~9.4° out: central band 5.8 * 1.1 with no climate uplift.
		{"central india", 20.0, 70.0, 6.38},
		// far south: 5.2 * 1.38.
		{"far south", 6.0, 68.0, 7.18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, attrs.SolarPotential(tt.lat, tt.lon), 1e-9)
		})
	}
}

func TestWaterAvailability(t *testing.T) {
	attrs := newTestCalculator()

	assert.Equal(t, model.WaterHigh, attrs.WaterAvailability(25, 77), "Ganges basin")
	assert.Equal(t, model.WaterHigh, attrs.WaterAvailability(17, 75), "Western Ghats")
	assert.Equal(t, model.WaterHigh, attrs.WaterAvailability(25, 90), "Brahmaputra basin")
	assert.Equal(t, model.WaterMedium, attrs.WaterAvailability(17, 82), "Central India")
	assert.Equal(t, model.WaterLow, attrs.WaterAvailability(10, 85), "arid default")
	// Basin bounds are exclusive: a point on the edge falls through.
	assert.Equal(t, model.WaterLow, attrs.WaterAvailability(30, 77))
}

func TestInfrastructureScore(t *testing.T) {
	attrs := newTestCalculator()

	assert.Equal(t, 90, attrs.InfrastructureScore(19.0760, 72.8777), "on Mumbai")
	assert.Equal(t, 75, attrs.InfrastructureScore(20.0, 74.0), "metropolitan belt")
	assert.Equal(t, 60, attrs.InfrastructureScore(25.0, 85.0), "regional center")
	assert.Equal(t, 40, attrs.InfrastructureScore(6.0, 68.0), "rural")
	assert.Equal(t, 20, attrs.InfrastructureScore(35.0, 97.0), "remote")
}

func TestRegion(t *testing.T) {
	attrs := newTestCalculator()

	assert.Equal(t, "Northern Mountains", attrs.Region(32, 78))
	assert.Equal(t, "Northern Plains", attrs.Region(27, 80))
	assert.Equal(t, "Central India", attrs.Region(22, 78))
	assert.Equal(t, "Southern Plateau", attrs.Region(17, 77))
	assert.Equal(t, "Southern Coast", attrs.Region(12, 76))
	assert.Equal(t, "Islands", attrs.Region(8, 93))
}

func TestClimateZone(t *testing.T) {
	attrs := newTestCalculator()

	assert.Equal(t, "Desert", attrs.ClimateZone(27, 75))
	assert.Equal(t, "Tropical Savanna", attrs.ClimateZone(22, 80))
	assert.Equal(t, "Tropical Monsoon", attrs.ClimateZone(15, 78))
	assert.Equal(t, "Subtropical Humid", attrs.ClimateZone(27, 90))
	assert.Equal(t, "Temperate", attrs.ClimateZone(27, 82))
}

func TestElevationEstimate(t *testing.T) {
	attrs := newTestCalculator()

	assert.Equal(t, 3000.0, attrs.ElevationEstimate(32, 78), "Himalayas")
	assert.Equal(t, 200.0, attrs.ElevationEstimate(26, 72), "Thar Desert")
	assert.Equal(t, 500.0, attrs.ElevationEstimate(15, 76), "Western Ghats")
	assert.Equal(t, 100.0, attrs.ElevationEstimate(22, 80), "plains")
}

func TestPopulationDensity(t *testing.T) {
	attrs := newTestCalculator()

	assert.Equal(t, model.DensityVeryHigh, attrs.PopulationDensity(19.1, 72.9), "next to Mumbai")
	assert.Equal(t, model.DensityHigh, attrs.PopulationDensity(25, 80), "Ganges belt")
	assert.Equal(t, model.DensityMedium, attrs.PopulationDensity(10, 77), "southern india")
	assert.Equal(t, model.DensityLow, attrs.PopulationDensity(35, 78), "remote north")
}

// The calculators accept substituted geographies, so a synthetic
// reference steers every lookup.
func TestSyntheticGeography(t *testing.T) {
	ref := &geodata.Reference{
		DemandCenters:        []geodata.Site{{Name: "Hub", Lat: 0, Lon: 0}},
		InfrastructureCities: []geodata.Site{{Name: "City", Lat: 0, Lon: 0}},
		UrbanCenters:         []geodata.Site{{Name: "City", Lat: 0, Lon: 0}},
		Basins: []geodata.BasinBox{
			{Name: "Everywhere", LatMin: -90, LatMax: 90, LonMin: -180, LonMax: 180, Availability: model.WaterHigh},
		},
		CoastalLatitudes:  []float64{0},
		CoastalLongitudes: []float64{0},
		SolarAnchor:       geodata.Site{Name: "Anchor", Lat: 0, Lon: 0},
	}
	attrs := NewAttributeCalculator(ref)

	assert.Equal(t, model.WaterHigh, attrs.WaterAvailability(45, 45))
	assert.Equal(t, 90, attrs.InfrastructureScore(0.1, 0.1))
	assert.Equal(t, model.DensityVeryHigh, attrs.PopulationDensity(0.1, 0.1))
}
