package service

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"

	"GeoH2-India/internal/domain/geodata"
	"GeoH2-India/internal/domain/model"
)

// AttributeCalculator derives the geophysical attributes of a cell
// from its center coordinates. Every method is a pure closed-form
// function of (lat, lon); proximity lookups go through quadtree
// indexes built once over the reference tables.
type AttributeCalculator struct {
	ref        *geodata.Reference
	cityIndex  *quadtree.Quadtree
	urbanIndex *quadtree.Quadtree
}

// NewAttributeCalculator indexes the reference tables for lookups.
func NewAttributeCalculator(ref *geodata.Reference) *AttributeCalculator {
	return &AttributeCalculator{
		ref:        ref,
		cityIndex:  siteIndex(ref.InfrastructureCities),
		urbanIndex: siteIndex(ref.UrbanCenters),
	}
}

// siteIndex builds a quadtree over the sites. Nearest-neighbor queries
// against it measure Euclidean distance in degree space, which is the
// metric the cost model is defined on.
func siteIndex(sites []geodata.Site) *quadtree.Quadtree {
	b := orb.Bound{Min: sites[0].Point(), Max: sites[0].Point()}
	for _, s := range sites {
		b = b.Extend(s.Point())
	}
	qt := quadtree.New(b.Pad(1.0))
	for _, s := range sites {
		_ = qt.Add(s)
	}
	return qt
}

// nearestSiteDistance returns the closest indexed site and its
// degree-space distance from (lat, lon).
func nearestSiteDistance(qt *quadtree.Quadtree, lat, lon float64) (geodata.Site, float64) {
	p := orb.Point{lon, lat}
	site := qt.Find(p).(geodata.Site)
	return site, planar.Distance(site.Point(), p)
}

// WindPotential estimates mean wind speed in m/s. Coastal proximity
// picks the base value; monsoon and terrain bands scale it.
func (a *AttributeCalculator) WindPotential(lat, lon float64) float64 {
	coastal := math.Inf(1)
	for _, refLat := range a.ref.CoastalLatitudes {
		coastal = math.Min(coastal, math.Abs(lat-refLat))
	}
	for _, refLon := range a.ref.CoastalLongitudes {
		coastal = math.Min(coastal, math.Abs(lon-refLon))
	}

	base := 4.0
	switch {
	case coastal < 2.0:
		base = 6.5
	case coastal < 5.0:
		base = 5.5
	}

	monsoon := 1.0
	if lat > 15 && lat < 25 {
		monsoon = 1.2
	}
	terrain := 1.0
	if lat > 20 && lat < 30 {
		terrain = 1.1
	}

	return round2(base * monsoon * terrain)
}

// SolarPotential estimates irradiance in kWh/m²/day, highest toward
// the northwest desert anchor.
func (a *AttributeCalculator) SolarPotential(lat, lon float64) float64 {
	anchor := a.ref.SolarAnchor
	dist := math.Sqrt((lat-anchor.Lat)*(lat-anchor.Lat) + (lon-anchor.Lon)*(lon-anchor.Lon))

	base := 5.2
	switch {
	case dist < 5.0:
		base = 6.2
	case dist < 10.0:
		base = 5.8
	}

	latFactor := 1.0 + (25.0-lat)*0.02
	climateFactor := 1.0
	if dist < 8.0 {
		climateFactor = 1.1
	}

	return round2(base * latFactor * climateFactor)
}

// WaterAvailability returns the category of the first basin containing
// the point, defaulting to Low in arid regions.
func (a *AttributeCalculator) WaterAvailability(lat, lon float64) model.WaterAvailability {
	for _, basin := range a.ref.Basins {
		if basin.Contains(lat, lon) {
			return basin.Availability
		}
	}
	return model.WaterLow
}

// InfrastructureScore rates development 0-100 by distance to the
// nearest major city.
func (a *AttributeCalculator) InfrastructureScore(lat, lon float64) int {
	_, dist := nearestSiteDistance(a.cityIndex, lat, lon)
	switch {
	case dist < 1.0:
		return 90
	case dist < 3.0:
		return 75
	case dist < 8.0:
		return 60
	case dist < 15.0:
		return 40
	default:
		return 20
	}
}

// Region labels the broad latitude band of the subcontinent.
func (a *AttributeCalculator) Region(lat, lon float64) string {
	switch {
	case lat > 30:
		return "Northern Mountains"
	case lat > 25:
		return "Northern Plains"
	case lat > 20:
		return "Central India"
	case lat > 15:
		return "Southern Plateau"
	case lat > 10:
		return "Southern Coast"
	default:
		return "Islands"
	}
}

// ClimateZone labels the climate by latitude/longitude bands.
func (a *AttributeCalculator) ClimateZone(lat, lon float64) string {
	switch {
	case lat > 25 && lon < 80:
		return "Desert"
	case lat > 20 && lat < 25:
		return "Tropical Savanna"
	case lat < 20:
		return "Tropical Monsoon"
	case lat > 25 && lon > 85:
		return "Subtropical Humid"
	default:
		return "Temperate"
	}
}

// ElevationEstimate returns a rough elevation in meters from the
// Himalaya/desert/ghats/plains bands.
func (a *AttributeCalculator) ElevationEstimate(lat, lon float64) float64 {
	switch {
	case lat > 30:
		return 3000
	case lat > 25 && lon < 75:
		return 200
	case lat < 20:
		return 500
	default:
		return 100
	}
}

// PopulationDensity is Very High within half a degree of a major urban
// center, otherwise falls back to regional bands.
func (a *AttributeCalculator) PopulationDensity(lat, lon float64) model.PopulationDensity {
	if _, dist := nearestSiteDistance(a.urbanIndex, lat, lon); dist < 0.5 {
		return model.DensityVeryHigh
	}
	switch {
	case lat > 20 && lat < 30 && lon > 70 && lon < 85:
		return model.DensityHigh
	case lat < 20:
		return model.DensityMedium
	default:
		return model.DensityLow
	}
}
