package service

import (
	"math"

	"GeoH2-India/internal/domain/model"
)

// ComponentMeans are the average per-component costs over a dataset.
type ComponentMeans struct {
	Wind           float64 `json:"wind"`
	Solar          float64 `json:"solar"`
	Water          float64 `json:"water"`
	Infrastructure float64 `json:"infrastructure"`
	Electrolyzer   float64 `json:"electrolyzer"`
	Transport      float64 `json:"transport"`
}

// DatasetStatistics summarizes a scored dataset for the API.
type DatasetStatistics struct {
	TotalCells      int                               `json:"total_cells"`
	MeanLCOH        float64                           `json:"mean_lcoh"`
	MinLCOH         float64                           `json:"min_lcoh"`
	MaxLCOH         float64                           `json:"max_lcoh"`
	MeanSuitability float64                           `json:"mean_suitability"`
	CategoryCounts  map[model.SuitabilityCategory]int `json:"category_counts"`
	ComponentMeans  ComponentMeans                    `json:"component_means"`
}

// ComputeStatistics aggregates LCOH and suitability over the cells.
// An empty dataset yields zeroed statistics.
func ComputeStatistics(cells []model.ScoredCell) DatasetStatistics {
	stats := DatasetStatistics{
		TotalCells:     len(cells),
		CategoryCounts: make(map[model.SuitabilityCategory]int),
	}
	for _, cat := range model.AllSuitabilityCategories() {
		stats.CategoryCounts[cat] = 0
	}
	if len(cells) == 0 {
		return stats
	}

	stats.MinLCOH = math.Inf(1)
	stats.MaxLCOH = math.Inf(-1)
	var lcohSum, suitSum float64
	var sums ComponentMeans
	for _, c := range cells {
		lcohSum += c.TotalLCOH
		suitSum += c.SuitabilityScore
		stats.MinLCOH = math.Min(stats.MinLCOH, c.TotalLCOH)
		stats.MaxLCOH = math.Max(stats.MaxLCOH, c.TotalLCOH)
		stats.CategoryCounts[c.SuitabilityCategory]++

		sums.Wind += c.WindCost
		sums.Solar += c.SolarCost
		sums.Water += c.WaterCost
		sums.Infrastructure += c.InfrastructureCost
		sums.Electrolyzer += c.ElectrolyzerCost
		sums.Transport += c.TransportCost
	}

	n := float64(len(cells))
	stats.MeanLCOH = round2(lcohSum / n)
	stats.MeanSuitability = round1(suitSum / n)
	stats.ComponentMeans = ComponentMeans{
		Wind:           round2(sums.Wind / n),
		Solar:          round2(sums.Solar / n),
		Water:          round2(sums.Water / n),
		Infrastructure: round2(sums.Infrastructure / n),
		Electrolyzer:   round2(sums.Electrolyzer / n),
		Transport:      round2(sums.Transport / n),
	}
	return stats
}
