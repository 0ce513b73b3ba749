package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"GeoH2-India/internal/config"
	"GeoH2-India/internal/database"
	"GeoH2-India/internal/domain/geodata"
	domainrepo "GeoH2-India/internal/domain/repository"
	"GeoH2-India/internal/domain/service"
	"GeoH2-India/internal/handler"
	"GeoH2-India/internal/observability"
	"GeoH2-India/internal/repository"
	"GeoH2-India/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ref := geodata.DefaultIndia()
	generator := service.NewGridGenerator(ref)
	scorer, err := service.NewCostScorer(ref, cfg.Weights, cfg.ScorerWorkers)
	if err != nil {
		log.Fatalf("invalid scoring weights: %v", err)
	}

	var repo domainrepo.DatasetRepository
	if cfg.DatabaseURL != "" {
		fmt.Println("Initializing PostgreSQL dataset store...")
		pgClient, err := database.NewPostgreSQLClient()
		if err != nil {
			log.Fatalf("PostgreSQL initialization failed: %v", err)
		}
		defer pgClient.Close()
		if err := pgClient.HealthCheck(); err != nil {
			log.Fatalf("PostgreSQL health check failed: %v", err)
		}
		fmt.Println("✅ PostgreSQL connection successful!")
		repo = repository.NewPostgresDatasetRepository(pgClient)
	} else {
		fmt.Println("No DATABASE_URL set, using in-memory dataset store")
		repo = repository.NewMemoryDatasetRepository()
	}

	metrics := observability.NewMetrics()
	atlas := usecase.NewAtlasUseCase(generator, scorer, repo, clockwork.NewRealClock(), metrics, cfg.Grid)

	if cfg.GenerateOnStart {
		if _, err := repo.Latest(context.Background()); err == domainrepo.ErrNoDataset {
			if _, err := atlas.GenerateDataset(context.Background()); err != nil {
				log.Fatalf("initial dataset generation failed: %v", err)
			}
		}
	}

	h := handler.NewAtlasHandler(atlas)
	r := handler.NewRouter(h, metrics, cfg.FrontendDir)

	fmt.Printf("GeoH2 India server starting on %s...\n", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
