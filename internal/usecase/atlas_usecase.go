package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/repository"
	"GeoH2-India/internal/domain/service"
	"GeoH2-India/internal/observability"
)

// ProjectStatus reports whether the atlas has data to serve and the
// parameters of the latest run.
type ProjectStatus struct {
	ProjectName    string            `json:"project_name"`
	Version        string            `json:"version"`
	Status         string            `json:"status"` // "ready" or "missing"
	DatasetID      string            `json:"dataset_id,omitempty"`
	TotalCells     int               `json:"total_cells"`
	DiscardedCells int               `json:"discarded_cells"`
	GeneratedAt    *time.Time        `json:"generated_at,omitempty"`
	Params         *model.GridParams `json:"params,omitempty"`
}

// AtlasUseCase orchestrates the generate-score-persist pipeline and
// the read paths behind the API.
type AtlasUseCase interface {
	// GenerateDataset runs the full pipeline with the configured
	// parameters and stores the result.
	GenerateDataset(ctx context.Context) (*model.Dataset, error)

	// LatestDataset returns the most recent stored dataset.
	LatestDataset(ctx context.Context) (*model.Dataset, error)

	// Status reports data availability for the status endpoint.
	Status(ctx context.Context) (*ProjectStatus, error)

	// Statistics aggregates the latest dataset.
	Statistics(ctx context.Context) (*service.DatasetStatistics, error)
}

type atlasUseCaseImpl struct {
	generator *service.GridGenerator
	scorer    *service.CostScorer
	repo      repository.DatasetRepository
	clock     clockwork.Clock
	metrics   *observability.Metrics
	params    model.GridParams
}

// NewAtlasUseCase wires the pipeline. A nil clock falls back to real
// time.
func NewAtlasUseCase(
	generator *service.GridGenerator,
	scorer *service.CostScorer,
	repo repository.DatasetRepository,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	params model.GridParams,
) AtlasUseCase {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &atlasUseCaseImpl{
		generator: generator,
		scorer:    scorer,
		repo:      repo,
		clock:     clock,
		metrics:   metrics,
		params:    params,
	}
}

func (u *atlasUseCaseImpl) GenerateDataset(ctx context.Context) (*model.Dataset, error) {
	start := u.clock.Now()
	log.Printf("generating hexagon grid (%.0f km, lat %.1f..%.1f, lon %.1f..%.1f)",
		u.params.ResolutionKM, u.params.LatMin, u.params.LatMax, u.params.LonMin, u.params.LonMax)

	cells, discarded, err := u.generator.Generate(u.params)
	if err != nil {
		return nil, fmt.Errorf("grid generation failed: %w", err)
	}
	u.metrics.CellsGenerated.Add(float64(len(cells)))
	u.metrics.CellsDiscarded.Add(float64(discarded))

	scored, err := u.scorer.ScoreAll(ctx, cells)
	if err != nil {
		return nil, fmt.Errorf("cost scoring failed: %w", err)
	}
	u.metrics.CellsScored.Add(float64(len(scored)))
	u.metrics.PipelineDuration.Observe(u.clock.Since(start).Seconds())

	dataset := &model.Dataset{
		ID:          uuid.NewString(),
		Params:      u.params,
		GeneratedAt: u.clock.Now().UTC(),
		Discarded:   discarded,
		Cells:       scored,
	}
	if err := u.repo.Save(ctx, dataset); err != nil {
		return nil, fmt.Errorf("failed to store dataset: %w", err)
	}

	log.Printf("dataset %s ready: %d cells scored, %d discarded", dataset.ID, len(scored), discarded)
	return dataset, nil
}

func (u *atlasUseCaseImpl) LatestDataset(ctx context.Context) (*model.Dataset, error) {
	return u.repo.Latest(ctx)
}

func (u *atlasUseCaseImpl) Status(ctx context.Context) (*ProjectStatus, error) {
	status := &ProjectStatus{
		ProjectName: "GeoH2 India",
		Version:     "2.0.0",
		Status:      "missing",
	}
	dataset, err := u.repo.Latest(ctx)
	if err == repository.ErrNoDataset {
		return status, nil
	}
	if err != nil {
		return nil, err
	}
	status.Status = "ready"
	status.DatasetID = dataset.ID
	status.TotalCells = len(dataset.Cells)
	status.DiscardedCells = dataset.Discarded
	status.GeneratedAt = &dataset.GeneratedAt
	status.Params = &dataset.Params
	return status, nil
}

func (u *atlasUseCaseImpl) Statistics(ctx context.Context) (*service.DatasetStatistics, error) {
	dataset, err := u.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	stats := service.ComputeStatistics(dataset.Cells)
	return &stats, nil
}
