package config

import (
	"fmt"
	"os"
	"strconv"

	"GeoH2-India/internal/domain/geodata"
	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/service"
)

// Config holds all service settings, populated from environment
// variables with India-wide defaults.
type Config struct {
	HTTPAddr    string
	FrontendDir string

	// DatabaseURL enables the PostgreSQL dataset store when set;
	// otherwise datasets live in memory.
	DatabaseURL string

	// GenerateOnStart runs the pipeline once at startup so the API
	// has a dataset to serve immediately.
	GenerateOnStart bool

	Grid    model.GridParams
	Weights service.ScoringWeights

	// ScorerWorkers bounds the per-cell scoring parallelism.
	ScorerWorkers int
}

// Load reads configuration from environment variables, applying
// defaults where unset, and fails fast on malformed or degenerate
// values before any cell is generated.
func Load() (*Config, error) {
	grid := model.GridParams{
		LatMin:       geodata.IndiaLatMin,
		LatMax:       geodata.IndiaLatMax,
		LonMin:       geodata.IndiaLonMin,
		LonMax:       geodata.IndiaLonMax,
		ResolutionKM: geodata.IndiaResolutionKM,
	}
	var err error
	if grid.LatMin, err = envFloat("GRID_LAT_MIN", grid.LatMin); err != nil {
		return nil, err
	}
	if grid.LatMax, err = envFloat("GRID_LAT_MAX", grid.LatMax); err != nil {
		return nil, err
	}
	if grid.LonMin, err = envFloat("GRID_LON_MIN", grid.LonMin); err != nil {
		return nil, err
	}
	if grid.LonMax, err = envFloat("GRID_LON_MAX", grid.LonMax); err != nil {
		return nil, err
	}
	if grid.ResolutionKM, err = envFloat("GRID_RESOLUTION_KM", grid.ResolutionKM); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid configuration: %w", err)
	}

	weights := service.DefaultScoringWeights()
	if weights.WindBlend, err = envFloat("WIND_BLEND", weights.WindBlend); err != nil {
		return nil, err
	}
	if weights.SolarBlend, err = envFloat("SOLAR_BLEND", weights.SolarBlend); err != nil {
		return nil, err
	}
	if weights.LCOHWeight, err = envFloat("LCOH_WEIGHT", weights.LCOHWeight); err != nil {
		return nil, err
	}
	if weights.RenewableWeight, err = envFloat("RENEWABLE_WEIGHT", weights.RenewableWeight); err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring weights: %w", err)
	}

	workers, err := envInt("SCORER_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("SCORER_WORKERS must be at least 1")
	}

	return &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		FrontendDir:     envOrDefault("FRONTEND_DIR", "frontend"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GenerateOnStart: envOrDefault("GENERATE_ON_START", "true") == "true",
		Grid:            grid,
		Weights:         weights,
		ScorerWorkers:   workers,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return i, nil
}
