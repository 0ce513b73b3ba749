package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/repository"
)

func TestMemoryDatasetRepositoryEmpty(t *testing.T) {
	repo := NewMemoryDatasetRepository()
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, repository.ErrNoDataset)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNoDataset)
}

func TestMemoryDatasetRepositorySaveAndLoad(t *testing.T) {
	repo := NewMemoryDatasetRepository()
	ctx := context.Background()

	older := &model.Dataset{ID: "run-1", GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &model.Dataset{ID: "run-2", GeneratedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-2", latest.ID)

	byID, err := repo.GetByID(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, older, byID)
}
