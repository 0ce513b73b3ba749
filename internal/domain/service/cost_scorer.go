package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/paulmach/orb/quadtree"

	"GeoH2-India/internal/domain/geodata"
	"GeoH2-India/internal/domain/model"
)

// Cost model constants, USD. The wind/solar base costs are per MWh;
// the water, infrastructure, electrolyzer and transport figures are
// per kg H2.
const (
	baseWindCost     = 45.0
	baseSolarCost    = 35.0
	electrolyzerCost = 1.2  // placeholder, no learning curve modeled
	transportRate    = 0.15 // per 100 km to the nearest demand center
)

// ScoringWeights are the blend ratios of the cost model. The 0.4/0.6
// wind/solar split and the 0.6/0.4 lcoh/renewable split carry no
// physical justification, so they stay overridable configuration.
type ScoringWeights struct {
	WindBlend       float64
	SolarBlend      float64
	LCOHWeight      float64
	RenewableWeight float64
}

// DefaultScoringWeights returns the standard blend ratios.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		WindBlend:       0.4,
		SolarBlend:      0.6,
		LCOHWeight:      0.6,
		RenewableWeight: 0.4,
	}
}

// Validate requires each pair of blend ratios to partition unity.
func (w ScoringWeights) Validate() error {
	if w.WindBlend < 0 || w.SolarBlend < 0 || math.Abs(w.WindBlend+w.SolarBlend-1.0) > 1e-9 {
		return &model.AttributeDomainError{Field: "wind_blend/solar_blend", Message: "must be non-negative and sum to 1"}
	}
	if w.LCOHWeight < 0 || w.RenewableWeight < 0 || math.Abs(w.LCOHWeight+w.RenewableWeight-1.0) > 1e-9 {
		return &model.AttributeDomainError{Field: "lcoh_weight/renewable_weight", Message: "must be non-negative and sum to 1"}
	}
	return nil
}

// CostScorer computes the cost breakdown and suitability of cells.
// Scoring one cell is a pure function of its attributes, so ScoreAll
// fans the work out across a bounded pool of goroutines.
type CostScorer struct {
	weights     ScoringWeights
	demandIndex *quadtree.Quadtree
	workers     int
}

// NewCostScorer builds a scorer over the demand-center table. workers
// bounds the per-cell parallelism of ScoreAll; values below 1 mean
// sequential.
func NewCostScorer(ref *geodata.Reference, weights ScoringWeights, workers int) (*CostScorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	return &CostScorer{
		weights:     weights,
		demandIndex: siteIndex(ref.DemandCenters),
		workers:     workers,
	}, nil
}

// Score computes the cost breakdown for one cell. Attributes outside
// their documented domains are rejected with an AttributeDomainError
// rather than silently producing wrong categories.
func (s *CostScorer) Score(cell model.GridCell) (model.ScoredCell, error) {
	if err := validateAttributes(cell); err != nil {
		return model.ScoredCell{}, err
	}

	breakdown := model.CostBreakdown{
		WindCost:           round2(windEnergyCost(cell.WindPotential, cell.Elevation)),
		SolarCost:          round2(solarEnergyCost(cell.SolarPotential)),
		WaterCost:          waterCost(cell.WaterAvailability),
		InfrastructureCost: infrastructureCost(cell.InfrastructureScore),
		ElectrolyzerCost:   electrolyzerCost,
		TransportCost:      round2(s.transportCost(cell.CenterLat, cell.CenterLon)),
	}
	// Total is derived from the stored components so it is always
	// exactly recomputable from them.
	breakdown.TotalLCOH = breakdown.WeightedTotal(s.weights.WindBlend, s.weights.SolarBlend)

	score := s.suitabilityScore(breakdown.TotalLCOH, cell.WindPotential, cell.SolarPotential)
	breakdown.SuitabilityScore = score
	breakdown.SuitabilityCategory = model.CategorizeSuitability(score)

	return model.ScoredCell{GridCell: cell, CostBreakdown: breakdown}, nil
}

// ScoreAll scores every cell in parallel and returns the results in
// input order regardless of goroutine scheduling.
func (s *CostScorer) ScoreAll(ctx context.Context, cells []model.GridCell) ([]model.ScoredCell, error) {
	results := make([]model.ScoredCell, len(cells))
	errs := make([]error, len(cells))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = s.Score(cells[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scoring cell %d failed: %w", cells[i].ID, err)
		}
	}
	return results, nil
}

func validateAttributes(cell model.GridCell) error {
	if cell.WindPotential < 0 || math.IsNaN(cell.WindPotential) || math.IsInf(cell.WindPotential, 0) {
		return &model.AttributeDomainError{Field: "wind_potential", Message: "must be a non-negative finite value"}
	}
	if cell.SolarPotential < 0 || math.IsNaN(cell.SolarPotential) || math.IsInf(cell.SolarPotential, 0) {
		return &model.AttributeDomainError{Field: "solar_potential", Message: "must be a non-negative finite value"}
	}
	if math.IsNaN(cell.Elevation) || math.IsInf(cell.Elevation, 0) {
		return &model.AttributeDomainError{Field: "elevation", Message: "must be finite"}
	}
	if cell.InfrastructureScore < 0 || cell.InfrastructureScore > 100 {
		return &model.AttributeDomainError{Field: "infrastructure_score", Message: "must be in [0, 100]"}
	}
	if !cell.WaterAvailability.Valid() {
		return &model.AttributeDomainError{Field: "water_availability", Message: "unknown category " + string(cell.WaterAvailability)}
	}
	return nil
}

// windEnergyCost divides the base cost by the capacity factor implied
// by the wind speed, then scales up with elevation.
func windEnergyCost(windPotential, elevation float64) float64 {
	var capacityFactor float64
	switch {
	case windPotential >= 6.0:
		capacityFactor = 0.35
	case windPotential >= 5.0:
		capacityFactor = 0.28
	case windPotential >= 4.0:
		capacityFactor = 0.20
	default:
		capacityFactor = 0.12
	}
	elevationFactor := 1.0 + (elevation/1000.0)*0.1
	return baseWindCost / capacityFactor * elevationFactor
}

func solarEnergyCost(solarPotential float64) float64 {
	var capacityFactor float64
	switch {
	case solarPotential >= 6.0:
		capacityFactor = 0.22
	case solarPotential >= 5.5:
		capacityFactor = 0.20
	case solarPotential >= 5.0:
		capacityFactor = 0.18
	default:
		capacityFactor = 0.15
	}
	return baseSolarCost / capacityFactor
}

func waterCost(availability model.WaterAvailability) float64 {
	switch availability {
	case model.WaterHigh:
		return 0.5
	case model.WaterMedium:
		return 1.2
	default:
		return 2.5
	}
}

func infrastructureCost(score int) float64 {
	switch {
	case score >= 80:
		return 0.3
	case score >= 60:
		return 0.6
	case score >= 40:
		return 1.0
	default:
		return 1.8
	}
}

// transportCost charges the transport rate per 100 km of degree-space
// distance to the nearest demand center.
func (s *CostScorer) transportCost(lat, lon float64) float64 {
	_, dist := nearestSiteDistance(s.demandIndex, lat, lon)
	distanceKM := dist * kmPerDegree
	return distanceKM / 100.0 * transportRate
}

// suitabilityScore blends a stepped LCOH score with the renewable
// resource quality, rounded to one decimal and clamped to [0, 100].
func (s *CostScorer) suitabilityScore(lcoh, windPotential, solarPotential float64) float64 {
	var lcohScore float64
	switch {
	case lcoh <= 3.0:
		lcohScore = 100
	case lcoh <= 4.0:
		lcohScore = 85
	case lcoh <= 5.0:
		lcohScore = 70
	case lcoh <= 6.0:
		lcohScore = 55
	default:
		lcohScore = 40
	}

	renewableScore := (windPotential/7.0 + solarPotential/6.5) * 50

	score := round1(lcohScore*s.weights.LCOHWeight + renewableScore*s.weights.RenewableWeight)
	return math.Min(100, math.Max(0, score))
}
