package repository

import (
	"context"
	"errors"

	"GeoH2-India/internal/domain/model"
)

// ErrNoDataset is returned when no generation run has been stored yet.
var ErrNoDataset = errors.New("no dataset available")

// DatasetRepository stores and retrieves generate-and-score runs.
type DatasetRepository interface {
	// Save persists a complete dataset.
	Save(ctx context.Context, dataset *model.Dataset) error

	// Latest returns the most recently generated dataset, or
	// ErrNoDataset when none has been stored.
	Latest(ctx context.Context) (*model.Dataset, error)

	// GetByID returns the dataset with the given run id, or
	// ErrNoDataset when it does not exist.
	GetByID(ctx context.Context, id string) (*model.Dataset, error)
}
