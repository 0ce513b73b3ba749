package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeoH2-India/internal/domain/geodata"
	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/service"
	"GeoH2-India/internal/observability"
	"GeoH2-India/internal/repository"
)

var testParams = model.GridParams{
	LatMin: 6, LatMax: 10, LonMin: 68, LonMax: 72, ResolutionKM: 100,
}

func newTestUseCase(t *testing.T, clock clockwork.Clock, metrics *observability.Metrics) AtlasUseCase {
	t.Helper()
	ref := geodata.DefaultIndia()
	scorer, err := service.NewCostScorer(ref, service.DefaultScoringWeights(), 4)
	require.NoError(t, err)
	return NewAtlasUseCase(
		service.NewGridGenerator(ref),
		scorer,
		repository.NewMemoryDatasetRepository(),
		clock,
		metrics,
		testParams,
	)
}

func TestGenerateDataset(t *testing.T) {
	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetricsForTesting()
	atlas := newTestUseCase(t, clock, metrics)
	ctx := context.Background()

	dataset, err := atlas.GenerateDataset(ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(dataset.ID)
	assert.NoError(t, err, "dataset id is a uuid")
	assert.Equal(t, clock.Now().UTC(), dataset.GeneratedAt)
	assert.Equal(t, testParams, dataset.Params)
	assert.NotEmpty(t, dataset.Cells)
	assert.Zero(t, dataset.Discarded)

	assert.Equal(t, float64(len(dataset.Cells)), testutil.ToFloat64(metrics.CellsGenerated))
	assert.Equal(t, float64(len(dataset.Cells)), testutil.ToFloat64(metrics.CellsScored))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CellsDiscarded))

	latest, err := atlas.LatestDataset(ctx)
	require.NoError(t, err)
	assert.Equal(t, dataset.ID, latest.ID)
}

func TestStatusBeforeAndAfterGeneration(t *testing.T) {
	atlas := newTestUseCase(t, clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)), observability.NewMetricsForTesting())
	ctx := context.Background()

	status, err := atlas.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "missing", status.Status)
	assert.Empty(t, status.DatasetID)

	dataset, err := atlas.GenerateDataset(ctx)
	require.NoError(t, err)

	status, err = atlas.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ready", status.Status)
	assert.Equal(t, dataset.ID, status.DatasetID)
	assert.Equal(t, len(dataset.Cells), status.TotalCells)
	require.NotNil(t, status.GeneratedAt)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), *status.GeneratedAt)
}

func TestStatistics(t *testing.T) {
	atlas := newTestUseCase(t, clockwork.NewFakeClock(), observability.NewMetricsForTesting())
	ctx := context.Background()

	_, err := atlas.Statistics(ctx)
	assert.Error(t, err, "no dataset yet")

	dataset, err := atlas.GenerateDataset(ctx)
	require.NoError(t, err)

	stats, err := atlas.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(dataset.Cells), stats.TotalCells)
	assert.GreaterOrEqual(t, stats.MaxLCOH, stats.MinLCOH)
	total := 0
	for _, n := range stats.CategoryCounts {
		total += n
	}
	assert.Equal(t, len(dataset.Cells), total)
}
