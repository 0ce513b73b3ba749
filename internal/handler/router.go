package handler

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"GeoH2-India/internal/observability"
)

// NewRouter assembles the gin engine: API routes, Prometheus metrics
// and the static frontend (only mounted when the directory exists).
func NewRouter(h *AtlasHandler, metrics *observability.Metrics, frontendDir string) *gin.Engine {
	r := gin.Default()
	r.Use(requestMetrics(metrics))

	api := r.Group("/api")
	{
		api.GET("/health", h.GetHealth)
		api.GET("/status", h.GetStatus)
		api.GET("/india/hexagons", h.GetHexagons)
		api.GET("/india/hexagons/preview", h.GetHexagonsPreview)
		api.GET("/india/lcoh", h.GetLCOH)
		api.GET("/india/summary", h.GetSummary)
		api.GET("/analysis/statistics", h.GetStatistics)
		api.POST("/generate-india", h.GenerateIndia)
		// GET kept for compatibility with the existing frontend.
		api.GET("/generate-india", h.GenerateIndia)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if frontendDir != "" {
		if _, err := os.Stat(frontendDir); err == nil {
			r.Static("/frontend", frontendDir)
		}
	}

	return r
}

func requestMetrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
