package model

// WaterAvailability is the closed set of water availability categories.
type WaterAvailability string

const (
	WaterHigh   WaterAvailability = "High"
	WaterMedium WaterAvailability = "Medium"
	WaterLow    WaterAvailability = "Low"
)

// Valid reports whether w is one of the known categories.
func (w WaterAvailability) Valid() bool {
	switch w {
	case WaterHigh, WaterMedium, WaterLow:
		return true
	}
	return false
}

// PopulationDensity is the closed set of population density categories.
type PopulationDensity string

const (
	DensityVeryHigh PopulationDensity = "Very High"
	DensityHigh     PopulationDensity = "High"
	DensityMedium   PopulationDensity = "Medium"
	DensityLow      PopulationDensity = "Low"
)

// Valid reports whether d is one of the known categories.
func (d PopulationDensity) Valid() bool {
	switch d {
	case DensityVeryHigh, DensityHigh, DensityMedium, DensityLow:
		return true
	}
	return false
}

// SuitabilityCategory labels a cell by its suitability score band.
type SuitabilityCategory string

const (
	MostSuitable       SuitabilityCategory = "Most Suitable"
	ModeratelySuitable SuitabilityCategory = "Moderately Suitable"
	LessSuitable       SuitabilityCategory = "Less Suitable"
	Unsuitable         SuitabilityCategory = "Unsuitable"
)

// CategorizeSuitability maps a 0-100 suitability score to its band.
func CategorizeSuitability(score float64) SuitabilityCategory {
	switch {
	case score >= 80:
		return MostSuitable
	case score >= 60:
		return ModeratelySuitable
	case score >= 40:
		return LessSuitable
	default:
		return Unsuitable
	}
}

// AllSuitabilityCategories returns every category, most suitable first.
func AllSuitabilityCategories() []SuitabilityCategory {
	return []SuitabilityCategory{MostSuitable, ModeratelySuitable, LessSuitable, Unsuitable}
}
