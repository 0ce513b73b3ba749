package model

import (
	"time"

	"github.com/paulmach/orb"
)

// GridCell is one hexagonal tile of the analysis area. All derived
// attributes are computed once at generation time and never mutated.
type GridCell struct {
	ID                  int               `json:"id"`
	CenterLat           float64           `json:"center_lat"`
	CenterLon           float64           `json:"center_lon"`
	WindPotential       float64           `json:"wind_potential"`       // m/s
	SolarPotential      float64           `json:"solar_potential"`      // kWh/m²/day
	WaterAvailability   WaterAvailability `json:"water_availability"`
	InfrastructureScore int               `json:"infrastructure_score"` // 0-100
	Elevation           float64           `json:"elevation"`            // meters
	Region              string            `json:"region"`
	ClimateZone         string            `json:"climate_zone"`
	PopulationDensity   PopulationDensity `json:"population_density"`

	// Boundary is the closed hexagon ring: 7 vertices in [lon, lat]
	// order, first and last identical.
	Boundary orb.Ring `json:"boundary"`
}

// CostBreakdown holds the per-component levelized cost of hydrogen for
// one cell. All components are USD per kg H2. TotalLCOH is always the
// weighted sum of the six components as stored, so it can be recomputed
// exactly from them.
type CostBreakdown struct {
	WindCost            float64             `json:"lcoh_wind"`
	SolarCost           float64             `json:"lcoh_solar"`
	WaterCost           float64             `json:"lcoh_water"`
	InfrastructureCost  float64             `json:"lcoh_infrastructure"`
	ElectrolyzerCost    float64             `json:"lcoh_electrolyzer"`
	TransportCost       float64             `json:"lcoh_transport"`
	TotalLCOH           float64             `json:"lcoh_total"`
	SuitabilityScore    float64             `json:"suitability_score"` // 0-100
	SuitabilityCategory SuitabilityCategory `json:"suitability_category"`
}

// WeightedTotal recomputes the blended LCOH from the stored components.
// windBlend and solarBlend are the generation-mix ratios; the remaining
// four components always enter at full weight.
func (c CostBreakdown) WeightedTotal(windBlend, solarBlend float64) float64 {
	return c.WindCost*windBlend +
		c.SolarCost*solarBlend +
		c.WaterCost +
		c.InfrastructureCost +
		c.ElectrolyzerCost +
		c.TransportCost
}

// ScoredCell is a GridCell with its cost breakdown attached. The
// embedded structs flatten into the single record shape the frontend
// consumes.
type ScoredCell struct {
	GridCell
	CostBreakdown
}

// GridParams describes one generation run: the bounding box and the
// hexagon size in kilometers.
type GridParams struct {
	LatMin       float64 `json:"lat_min"`
	LatMax       float64 `json:"lat_max"`
	LonMin       float64 `json:"lon_min"`
	LonMax       float64 `json:"lon_max"`
	ResolutionKM float64 `json:"resolution_km"`
}

// Validate rejects degenerate bounding boxes and non-positive
// resolutions before any cell is generated.
func (p GridParams) Validate() error {
	if p.ResolutionKM <= 0 {
		return &AttributeDomainError{Field: "resolution_km", Message: "must be positive"}
	}
	if p.LatMax <= p.LatMin {
		return &AttributeDomainError{Field: "lat_max", Message: "must be greater than lat_min"}
	}
	if p.LonMax <= p.LonMin {
		return &AttributeDomainError{Field: "lon_max", Message: "must be greater than lon_min"}
	}
	return nil
}

// Dataset is one complete generate-and-score run.
type Dataset struct {
	ID          string       `json:"id"`
	Params      GridParams   `json:"params"`
	GeneratedAt time.Time    `json:"generated_at"`
	Discarded   int          `json:"discarded_cells"`
	Cells       []ScoredCell `json:"cells"`
}
