package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"GeoH2-India/internal/domain/model"
)

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)

	assert.Equal(t, 0, stats.TotalCells)
	assert.Equal(t, 0.0, stats.MeanLCOH)
	assert.Len(t, stats.CategoryCounts, 4, "every category is reported even when empty")
}

func TestComputeStatistics(t *testing.T) {
	cells := []model.ScoredCell{
		{CostBreakdown: model.CostBreakdown{
			WindCost: 100, SolarCost: 150, WaterCost: 0.5, InfrastructureCost: 0.3,
			ElectrolyzerCost: 1.2, TransportCost: 0.4,
			TotalLCOH: 4.0, SuitabilityScore: 85, SuitabilityCategory: model.MostSuitable,
		}},
		{CostBreakdown: model.CostBreakdown{
			WindCost: 200, SolarCost: 170, WaterCost: 2.5, InfrastructureCost: 1.8,
			ElectrolyzerCost: 1.2, TransportCost: 1.0,
			TotalLCOH: 6.0, SuitabilityScore: 45, SuitabilityCategory: model.LessSuitable,
		}},
	}

	stats := ComputeStatistics(cells)

	assert.Equal(t, 2, stats.TotalCells)
	assert.InDelta(t, 5.0, stats.MeanLCOH, 1e-9)
	assert.Equal(t, 4.0, stats.MinLCOH)
	assert.Equal(t, 6.0, stats.MaxLCOH)
	assert.InDelta(t, 65.0, stats.MeanSuitability, 1e-9)

	assert.Equal(t, 1, stats.CategoryCounts[model.MostSuitable])
	assert.Equal(t, 0, stats.CategoryCounts[model.ModeratelySuitable])
	assert.Equal(t, 1, stats.CategoryCounts[model.LessSuitable])
	assert.Equal(t, 0, stats.CategoryCounts[model.Unsuitable])

	assert.InDelta(t, 150.0, stats.ComponentMeans.Wind, 1e-9)
	assert.InDelta(t, 160.0, stats.ComponentMeans.Solar, 1e-9)
	assert.InDelta(t, 1.5, stats.ComponentMeans.Water, 1e-9)
	assert.InDelta(t, 1.05, stats.ComponentMeans.Infrastructure, 1e-9)
	assert.InDelta(t, 1.2, stats.ComponentMeans.Electrolyzer, 1e-9)
	assert.InDelta(t, 0.7, stats.ComponentMeans.Transport, 1e-9)
}
