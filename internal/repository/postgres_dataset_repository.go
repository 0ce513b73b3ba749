package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"GeoH2-India/internal/database"
	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/repository"
)

// PostgresDatasetRepository persists datasets in a datasets table with
// the parameters and cells stored as JSONB.
//
// Schema:
//
//	CREATE TABLE datasets (
//	    id              UUID PRIMARY KEY,
//	    params          JSONB NOT NULL,
//	    generated_at    TIMESTAMPTZ NOT NULL,
//	    discarded_cells INTEGER NOT NULL,
//	    cells           JSONB NOT NULL
//	);
type PostgresDatasetRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresDatasetRepository wraps the shared PostgreSQL client.
func NewPostgresDatasetRepository(client *database.PostgreSQLClient) repository.DatasetRepository {
	return &PostgresDatasetRepository{client: client}
}

func (r *PostgresDatasetRepository) Save(ctx context.Context, dataset *model.Dataset) error {
	params, err := json.Marshal(dataset.Params)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset params: %w", err)
	}
	cells, err := json.Marshal(dataset.Cells)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset cells: %w", err)
	}

	_, err = r.client.DB.ExecContext(ctx,
		`INSERT INTO datasets (id, params, generated_at, discarded_cells, cells)
		 VALUES ($1, $2, $3, $4, $5)`,
		dataset.ID, params, dataset.GeneratedAt, dataset.Discarded, cells,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dataset %s: %w", dataset.ID, err)
	}
	return nil
}

func (r *PostgresDatasetRepository) Latest(ctx context.Context) (*model.Dataset, error) {
	row := r.client.DB.QueryRowContext(ctx,
		`SELECT id, params, generated_at, discarded_cells, cells
		 FROM datasets ORDER BY generated_at DESC LIMIT 1`)
	return scanDataset(row)
}

func (r *PostgresDatasetRepository) GetByID(ctx context.Context, id string) (*model.Dataset, error) {
	row := r.client.DB.QueryRowContext(ctx,
		`SELECT id, params, generated_at, discarded_cells, cells
		 FROM datasets WHERE id = $1`, id)
	return scanDataset(row)
}

func scanDataset(row *sql.Row) (*model.Dataset, error) {
	var dataset model.Dataset
	var params, cells []byte
	err := row.Scan(&dataset.ID, &params, &dataset.GeneratedAt, &dataset.Discarded, &cells)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset row: %w", err)
	}
	if err := json.Unmarshal(params, &dataset.Params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset params: %w", err)
	}
	if err := json.Unmarshal(cells, &dataset.Cells); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset cells: %w", err)
	}
	return &dataset, nil
}
