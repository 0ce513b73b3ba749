package service

import (
	"log"
	"math"

	"GeoH2-India/internal/domain/geodata"
	"GeoH2-India/internal/domain/model"
)

// kmPerDegree approximates the length of one degree of latitude.
const kmPerDegree = 111.0

// GridGenerator tessellates a bounding box into hexagonal cells and
// attaches the derived geophysical attributes to each one.
type GridGenerator struct {
	attrs *AttributeCalculator
}

// NewGridGenerator creates a generator over the given reference tables.
func NewGridGenerator(ref *geodata.Reference) *GridGenerator {
	return &GridGenerator{attrs: NewAttributeCalculator(ref)}
}

// Generate produces the cells covering the bounding box in row-major
// order (latitude outer, longitude inner), assigning ids sequentially
// to cells that pass geometry validation, so ids stay contiguous even
// when a candidate is discarded. The second return value is the number
// of discarded candidates. The run is fully deterministic: identical
// params always produce an identical sequence.
func (g *GridGenerator) Generate(params model.GridParams) ([]model.GridCell, int, error) {
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	latStep := params.ResolutionKM / kmPerDegree
	midLat := (params.LatMin + params.LatMax) / 2
	lonStep := params.ResolutionKM / (kmPerDegree * math.Cos(midLat*math.Pi/180.0))
	radius := latStep / 2

	var cells []model.GridCell
	discarded := 0
	id := 0
	for i := 0; ; i++ {
		lat := params.LatMin + float64(i)*latStep
		if lat >= params.LatMax+latStep {
			break
		}
		for j := 0; ; j++ {
			lon := params.LonMin + float64(j)*lonStep
			if lon >= params.LonMax+lonStep {
				break
			}

			ring := HexagonRing(lat, lon, radius)
			if err := ValidateHexagon(lat, lon, ring); err != nil {
				log.Printf("skipping cell: %v", err)
				discarded++
				continue
			}

			cells = append(cells, model.GridCell{
				ID:                  id,
				CenterLat:           lat,
				CenterLon:           lon,
				WindPotential:       g.attrs.WindPotential(lat, lon),
				SolarPotential:      g.attrs.SolarPotential(lat, lon),
				WaterAvailability:   g.attrs.WaterAvailability(lat, lon),
				InfrastructureScore: g.attrs.InfrastructureScore(lat, lon),
				Elevation:           g.attrs.ElevationEstimate(lat, lon),
				Region:              g.attrs.Region(lat, lon),
				ClimateZone:         g.attrs.ClimateZone(lat, lon),
				PopulationDensity:   g.attrs.PopulationDensity(lat, lon),
				Boundary:            ring,
			})
			id++
		}
	}

	return cells, discarded, nil
}
