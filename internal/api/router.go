package api

import (
	"log/slog"
	"net/http"

	"slb-charger-econ/internal/api/handlers"
	"slb-charger-econ/internal/api/middleware"
	"slb-charger-econ/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires middleware and routes for the comparison API.
func NewRouter(srv config.Server, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(srv.AllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	compareHandler := handlers.NewCompareHandler(srv.PresetDir, config.NewPresetCache(srv.PresetCacheTTL), logger)
	presetHandler := handlers.NewPresetHandler(srv.PresetDir, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/parameters", handlers.ListParameters)
		v1.GET("/presets", presetHandler.ListPresets)

		v1.POST("/compare", compareHandler.RunCompare)
		v1.POST("/compare/variations", compareHandler.CompareVariations)
		v1.POST("/sensitivity", compareHandler.RunSensitivity)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
