package repository

import (
	"context"
	"sync"

	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/repository"
)

// MemoryDatasetRepository keeps datasets in process memory. It serves
// the API when no database is configured.
type MemoryDatasetRepository struct {
	mu       sync.RWMutex
	byID     map[string]*model.Dataset
	latestID string
}

// NewMemoryDatasetRepository creates an empty in-memory store.
func NewMemoryDatasetRepository() *MemoryDatasetRepository {
	return &MemoryDatasetRepository{byID: make(map[string]*model.Dataset)}
}

func (r *MemoryDatasetRepository) Save(ctx context.Context, dataset *model.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[dataset.ID] = dataset
	r.latestID = dataset.ID
	return nil
}

func (r *MemoryDatasetRepository) Latest(ctx context.Context) (*model.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latestID == "" {
		return nil, repository.ErrNoDataset
	}
	return r.byID[r.latestID], nil
}

func (r *MemoryDatasetRepository) GetByID(ctx context.Context, id string) (*model.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dataset, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNoDataset
	}
	return dataset, nil
}
