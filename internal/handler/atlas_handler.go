package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"GeoH2-India/internal/domain/model"
	"GeoH2-India/internal/domain/repository"
	"GeoH2-India/internal/usecase"
)

// previewLimit caps the number of cells returned in preview mode.
const previewLimit = 100

// AtlasHandler exposes the read-only hydrogen atlas API.
type AtlasHandler struct {
	atlasUseCase usecase.AtlasUseCase
}

// NewAtlasHandler creates a new AtlasHandler instance.
func NewAtlasHandler(atlasUseCase usecase.AtlasUseCase) *AtlasHandler {
	return &AtlasHandler{atlasUseCase: atlasUseCase}
}

// GetHealth GET /api/health
func (h *AtlasHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "GeoH2 India backend running",
	})
}

// GetStatus GET /api/status - project status and data availability
func (h *AtlasHandler) GetStatus(c *gin.Context) {
	status, err := h.atlasUseCase.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to read project status: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetHexagons GET /api/india/hexagons - scored hexagon grid.
// ?preview=true limits the response to the first cells.
func (h *AtlasHandler) GetHexagons(c *gin.Context) {
	preview := c.Query("preview") == "true"
	h.respondHexagons(c, preview)
}

// GetHexagonsPreview GET /api/india/hexagons/preview
func (h *AtlasHandler) GetHexagonsPreview(c *gin.Context) {
	h.respondHexagons(c, true)
}

func (h *AtlasHandler) respondHexagons(c *gin.Context, preview bool) {
	dataset, ok := h.latestDataset(c)
	if !ok {
		return
	}

	cells := dataset.Cells
	if preview && len(cells) > previewLimit {
		cells = cells[:previewLimit]
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"dataset_id":     dataset.ID,
		"total_hexagons": len(dataset.Cells),
		"returned":       len(cells),
		"bounds":         boundsOf(dataset.Params),
		"data":           cells,
	})
}

// GetLCOH GET /api/india/lcoh - scored cells with LCOH statistics
func (h *AtlasHandler) GetLCOH(c *gin.Context) {
	dataset, ok := h.latestDataset(c)
	if !ok {
		return
	}
	stats, err := h.atlasUseCase.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to compute LCOH statistics: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"dataset_id":      dataset.ID,
		"total_hexagons":  len(dataset.Cells),
		"lcoh_statistics": stats,
		"data":            dataset.Cells,
	})
}

// GetSummary GET /api/india/summary - dataset summary without cells
func (h *AtlasHandler) GetSummary(c *gin.Context) {
	status, err := h.atlasUseCase.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to read project status: " + err.Error(),
		})
		return
	}
	if status.Status != "ready" {
		h.respondNoDataset(c)
		return
	}
	stats, err := h.atlasUseCase.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to compute statistics: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"summary":    status,
		"statistics": stats,
	})
}

// GetStatistics GET /api/analysis/statistics - analysis insights
func (h *AtlasHandler) GetStatistics(c *gin.Context) {
	stats, err := h.atlasUseCase.Statistics(c.Request.Context())
	if errors.Is(err, repository.ErrNoDataset) {
		h.respondNoDataset(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to compute statistics: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"analysis_summary": stats,
	})
}

// GenerateIndia POST /api/generate-india - run the pipeline and store
// the resulting dataset
func (h *AtlasHandler) GenerateIndia(c *gin.Context) {
	dataset, err := h.atlasUseCase.GenerateDataset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "generation_failed",
			"message": "Failed to generate dataset: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"dataset_id":      dataset.ID,
		"total_hexagons":  len(dataset.Cells),
		"discarded_cells": dataset.Discarded,
		"generated_at":    dataset.GeneratedAt,
	})
}

func (h *AtlasHandler) latestDataset(c *gin.Context) (*model.Dataset, bool) {
	dataset, err := h.atlasUseCase.LatestDataset(c.Request.Context())
	if errors.Is(err, repository.ErrNoDataset) {
		h.respondNoDataset(c)
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load dataset: " + err.Error(),
		})
		return nil, false
	}
	return dataset, true
}

func (h *AtlasHandler) respondNoDataset(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "no_dataset",
		"message": "No dataset has been generated yet. POST /api/generate-india first.",
	})
}

// boundsOf returns [lon_min, lat_min, lon_max, lat_max], the order the
// frontend map expects.
func boundsOf(p model.GridParams) []float64 {
	return []float64{p.LonMin, p.LatMin, p.LonMax, p.LatMax}
}
